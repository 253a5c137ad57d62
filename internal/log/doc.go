// Package log provides secure logging built on top of the standard slog
// package.
//
// SecureHandler wraps any slog.Handler and masks sensitive attribute values
// before they are written:
//   - values stored under keys such as password, secret, token, api_key or
//     credential, including dot-namespaced registry keys whose last segment
//     is one of them
//   - values that look like bearer tokens, JWTs or PEM private keys
//
// # Usage
//
//	logger := log.NewSecureLogger(os.Stderr, verbose)
//	logger.Debug("registry loaded", log.Settings("registry", reg.All()))
//
// NewSecureJSONLogger does the same with JSON output.
package log
