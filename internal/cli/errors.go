package cli

import (
	"crypto/x509"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"
)

// ConnectionErrorType categorizes a failure to reach the platform.
type ConnectionErrorType int

const (
	// ConnectionErrorNone means the platform answered.
	ConnectionErrorNone ConnectionErrorType = iota
	// ConnectionErrorTLS indicates a TLS/certificate verification error.
	ConnectionErrorTLS
	// ConnectionErrorNetwork indicates refused or unreachable connections.
	ConnectionErrorNetwork
	// ConnectionErrorTimeout indicates a connection timeout.
	ConnectionErrorTimeout
	// ConnectionErrorDNS indicates a DNS resolution failure.
	ConnectionErrorDNS
)

// String returns a human-readable name for the connection error type.
func (t ConnectionErrorType) String() string {
	switch t {
	case ConnectionErrorTLS:
		return "TLS certificate error"
	case ConnectionErrorNetwork:
		return "Network error"
	case ConnectionErrorTimeout:
		return "Connection timeout"
	case ConnectionErrorDNS:
		return "DNS resolution error"
	default:
		return ""
	}
}

// ClassifyConnectionError reports why the platform could not be reached, or
// ConnectionErrorNone when err is not a transport failure.
func ClassifyConnectionError(err error) ConnectionErrorType {
	if err == nil {
		return ConnectionErrorNone
	}
	if isTLSError(err) {
		return ConnectionErrorTLS
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return ConnectionErrorDNS
	}
	if isTimeoutError(err) {
		return ConnectionErrorTimeout
	}
	if isNetworkError(err.Error()) {
		return ConnectionErrorNetwork
	}
	return ConnectionErrorNone
}

func isTLSError(err error) bool {
	var certErr *x509.CertificateInvalidError
	var hostErr *x509.HostnameError
	var unknownAuthErr *x509.UnknownAuthorityError
	if errors.As(err, &certErr) || errors.As(err, &hostErr) || errors.As(err, &unknownAuthErr) {
		return true
	}
	errStr := err.Error()
	return strings.Contains(errStr, "x509:") || strings.Contains(errStr, "tls:")
}

func isTimeoutError(err error) bool {
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	return strings.Contains(err.Error(), "deadline exceeded")
}

func isNetworkError(errStr string) bool {
	for _, keyword := range []string{
		"connection refused",
		"connection reset",
		"network is unreachable",
		"no route to host",
		"dial tcp",
	} {
		if strings.Contains(errStr, keyword) {
			return true
		}
	}
	return false
}

// NotAuthenticatedError is returned when a command needs stored credentials
// and there are none.
type NotAuthenticatedError struct{}

// Error returns a user-friendly error message with actionable guidance.
func (e *NotAuthenticatedError) Error() string {
	return `You are not logged in

To log in, run:
  rbw login <email> <password>`
}

// Is allows errors.Is() to work with wrapped errors.
func (e *NotAuthenticatedError) Is(target error) bool {
	_, ok := target.(*NotAuthenticatedError)
	return ok
}

// SessionEstablishmentError indicates the login call made before every
// command failed.
type SessionEstablishmentError struct {
	// Host is the platform that refused or could not be reached.
	Host string
	// Type is set when the platform could not be reached at all.
	Type ConnectionErrorType
	// Reason is the underlying error.
	Reason error
}

// Error returns a user-friendly error message.
func (e *SessionEstablishmentError) Error() string {
	if e.Type != ConnectionErrorNone {
		return fmt.Sprintf("Cannot reach %s (%s): %v", e.Host, e.Type, e.Reason)
	}
	return fmt.Sprintf("Cannot sign in to %s: %v", e.Host, e.Reason)
}

// Unwrap returns the underlying error.
func (e *SessionEstablishmentError) Unwrap() error {
	return e.Reason
}

// Is allows errors.Is() to work with wrapped errors.
func (e *SessionEstablishmentError) Is(target error) bool {
	_, ok := target.(*SessionEstablishmentError)
	return ok
}

// RemoteCallError indicates a call of a command's sequence failed.
type RemoteCallError struct {
	// Step names the failing call.
	Step string
	// Reason is the underlying error, usually an *sdk.APIError.
	Reason error
}

// Error returns the failing step and the reason.
func (e *RemoteCallError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Step, e.Reason)
}

// Unwrap returns the underlying error.
func (e *RemoteCallError) Unwrap() error {
	return e.Reason
}

// Is allows errors.Is() to work with wrapped errors.
func (e *RemoteCallError) Is(target error) bool {
	_, ok := target.(*RemoteCallError)
	return ok
}

// CancelledError is returned when the user declines a confirmation.
type CancelledError struct {
	Action string
}

// Error returns a short message.
func (e *CancelledError) Error() string {
	return fmt.Sprintf("%s cancelled", e.Action)
}

// Is allows errors.Is() to work with wrapped errors.
func (e *CancelledError) Is(target error) bool {
	_, ok := target.(*CancelledError)
	return ok
}

// OutputWriteError indicates the result could not be written.
type OutputWriteError struct {
	// Path is the destination file, empty for the terminal.
	Path string
	// Reason is the underlying error.
	Reason error
}

// Error returns a user-friendly error message.
func (e *OutputWriteError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("Cannot display the result: %v", e.Reason)
	}
	return fmt.Sprintf("Cannot write '%s': %v", e.Path, e.Reason)
}

// Unwrap returns the underlying error.
func (e *OutputWriteError) Unwrap() error {
	return e.Reason
}

// Is allows errors.Is() to work with wrapped errors.
func (e *OutputWriteError) Is(target error) bool {
	_, ok := target.(*OutputWriteError)
	return ok
}

// reportedError marks an error already shown to the user.
type reportedError struct {
	error
}

func (e reportedError) Unwrap() error {
	return e.error
}

// MarkReported wraps err so the top level does not print it a second time.
func MarkReported(err error) error {
	if err == nil || IsReported(err) {
		return err
	}
	return reportedError{err}
}

// IsReported reports whether err was already shown to the user.
func IsReported(err error) bool {
	var r reportedError
	return errors.As(err, &r)
}
