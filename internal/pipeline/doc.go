// Package pipeline implements the document conversion stages:
// Markdown to HTML rendering, syntax-highlight CSS generation, HTML
// document assembly, and relative resource path rewriting.
package pipeline
