// Package report provides the report value, its presentation decorators and
// the writers that output a finished report.
//
// A Report exposes a title, a type label and its generated text. Basic is the
// immutable report produced by rendering a document tree. Decorators wrap a
// Report and inject a presentation block before or after the wrapped text:
//   - Watermark: confidentiality banners above and below the content
//   - Header: organization banner above the content
//   - Audit: auditor box after the content
//   - Signature: digital signature block after the content
//   - Footer: generation metadata after the content
//
// Stack applies the enabled decorators in a fixed order (watermark, header,
// audit, signature, footer), so the final layout does not depend on the order
// in which the layers were configured.
//
// Writers implement the Writer interface and output a Report as plain text
// (SimpleWriter) or as a JSON envelope (JSONWriter).
package report
