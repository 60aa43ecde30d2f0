package prompt

import "strings"

// Build renders the prompt for the supplied survey answers. Pure and
// deterministic; no trimming or other normalization is applied to the inputs.
func Build(interest, motivation, enrollment string) string {
	var b strings.Builder
	b.WriteString("You are writing internal communication to employees about upskilling.\n\n")
	b.WriteString("The text you produce will be inserted into a pre-written email, so follow these rules:\n")
	b.WriteString("- Professional, encouraging tone.\n")
	b.WriteString("- At most 120 words, in a single paragraph.\n")
	b.WriteString("- Do not adopt a persona, do not greet, and do not sign off.\n")
	b.WriteString("- Do not write in the first person.\n")
	b.WriteString("- No bullet points or numbered lists.\n\n")
	b.WriteString("Here are the employee's survey responses:\n")
	b.WriteString("- Areas of interest: ")
	b.WriteString(interest)
	b.WriteString("\n- Motivation: ")
	b.WriteString(motivation)
	b.WriteString("\n- Currently in training: ")
	b.WriteString(enrollment)
	b.WriteString("\n\nHere is an example of the tone and structure to match:\n\n")
	b.WriteString("You can explore various upskilling paths by visiting the Collaboration & Knowledge Hub. ")
	b.WriteString("There, you'll find a range of options to suit your interests, such as Automation, AI and Performance. ")
	b.WriteString("To guide you towards areas with strong demand, prioritizing Automation and AI is recommended, ")
	b.WriteString("as these skills are currently highly valued in the industry.\n\n")
	b.WriteString("Now generate only the middle paragraph of the email.")
	return b.String()
}
