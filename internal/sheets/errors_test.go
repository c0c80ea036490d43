package sheets

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"google.golang.org/api/googleapi"
)

func TestRemoteError(t *testing.T) {
	t.Run("LiftsGoogleAPIErrorDetail", func(t *testing.T) {
		gerr := &googleapi.Error{Code: 403, Message: "The caller does not have permission"}

		re := remoteError("get", "Sheet1!a:z", gerr)

		if re.Code != 403 {
			t.Errorf("Expected status 403, got %d", re.Code)
		}
		if re.Detail != "The caller does not have permission" {
			t.Errorf("Expected service message as detail, got %q", re.Detail)
		}
		if !errors.Is(re, gerr) {
			t.Error("Expected wrapped error to be reachable via errors.Is")
		}
	})

	t.Run("WrapsTransportErrors", func(t *testing.T) {
		base := fmt.Errorf("connection refused")

		re := remoteError("update", "a4", base)

		if re.Code != 0 {
			t.Errorf("Expected no status code for transport error, got %d", re.Code)
		}
		if !strings.Contains(re.Error(), "connection refused") {
			t.Errorf("Expected message to carry the cause, got %q", re.Error())
		}
	})

	t.Run("MessageNamesOpAndRange", func(t *testing.T) {
		re := remoteError("get", "bogus!range", fmt.Errorf("bad range"))

		msg := re.Error()
		if !strings.Contains(msg, "get") || !strings.Contains(msg, "bogus!range") {
			t.Errorf("Expected message to name op and range, got %q", msg)
		}
	})
}

func TestPreconditionError(t *testing.T) {
	err := &PreconditionError{Op: "delete", Reason: "column count unknown"}

	if !strings.Contains(err.Error(), "delete") {
		t.Errorf("Expected message to name the operation, got %q", err.Error())
	}
	if !strings.Contains(err.Error(), "column count unknown") {
		t.Errorf("Expected message to carry the reason, got %q", err.Error())
	}
}
