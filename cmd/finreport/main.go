// Package main provides the entry point for the finreport CLI.
//
// finreport composes corporate financial reports. Each report is a tree of
// sections, text blocks and tables rendered as plain text, optionally wrapped
// in a watermark, a corporate header, an audit block, a digital signature
// and a footer.
//
// Usage:
//
//	finreport generate <archetype>
//	finreport batch <archetype>... | all
//	finreport custom --title <title> --type <type>
//
// See --help for all available options.
package main

// main is the entry point for finreport.
func main() {
	Execute()
}
