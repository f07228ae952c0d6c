// Package encode renders ir.Value trees as HCL text.
package encode
