package client

import (
	"context"
	"errors"
	"net"
	"strings"
)

// ClassifyError maps a node error onto a ClientError.
func ClassifyError(err error) ClientError {
	if err == nil {
		return ""
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return TransactionTimedOut
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return NetworkError
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "insufficient funds for gas"):
		return NoBalanceForGas
	case strings.Contains(msg, "insufficient funds"), strings.Contains(msg, "insufficient balance"):
		return NoBalance
	case strings.Contains(msg, "already known"), strings.Contains(msg, "nonce too low"):
		return TransactionExists
	case strings.Contains(msg, "execution reverted"), strings.Contains(msg, "intrinsic gas too low"):
		return TransactionFailure
	case strings.Contains(msg, "connection refused"), strings.Contains(msg, "eof"):
		return NetworkError
	}
	return UnknownError
}
