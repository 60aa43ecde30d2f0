// Package compose merges generated content into the fixed campaign message
// template.
//
// Recipient-provided fields and model output are interpolated through
// html/template, so everything is escaped before it reaches the HTML body.
// The earlier revisions of this tool interpolated raw strings, which is an
// injection risk; the template approach closes it.
package compose
