// Package domain contains the service-level rules that sit on top of the doi
// recognizer: sentinel errors, field-level validation errors, and the limits
// applied to caller-supplied text before it reaches the recognizer.
package domain
