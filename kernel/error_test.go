package kernel

import "testing"

func TestKernelError(t *testing.T) {
	err := &Error{
		Module:  "ns16550",
		Message: "error message",
	}

	if err.Error() != err.Message {
		t.Fatalf("expected to err.Error() to return %q; got %q", err.Message, err.Error())
	}

	var goErr error = err
	if goErr.Error() != "error message" {
		t.Fatalf("expected *Error to satisfy the error interface; got %q", goErr.Error())
	}
}
