package gomap

import "fmt"

type UnmarshalError struct {
	FieldPath string
	Message   string
}

func (e *UnmarshalError) Error() string {
	if e.FieldPath == "" {
		return fmt.Sprintf("gomap: %s", e.Message)
	}
	return fmt.Sprintf("gomap: %s: %s", e.FieldPath, e.Message)
}

type MarshalError struct {
	FieldPath string
	Message   string
}

func (e *MarshalError) Error() string {
	if e.FieldPath == "" {
		return fmt.Sprintf("gomap: %s", e.Message)
	}
	return fmt.Sprintf("gomap: %s: %s", e.FieldPath, e.Message)
}
