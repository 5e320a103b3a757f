package external

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"

	"google.golang.org/genai"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"wada-stylist/internal/domain/valueobjects"
)

// ClassifyError maps an upstream error onto the failure taxonomy.
// Upstream bodies stay in the wrapped error for logging and never become the user message.
func ClassifyError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := valueobjects.AsFailure(err); ok {
		return err
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return valueobjects.NewFailure(valueobjects.FailureTimeout, "upstream request timed out", err)
	}

	// Vertex は gRPC のステータスで返す
	if st, ok := status.FromError(err); ok {
		if failure := classifyStatus(st, err); failure != nil {
			return failure
		}
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return classifyAPIError(apiErr, err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return valueobjects.NewFailure(valueobjects.FailureTimeout, "upstream request timed out", err)
		}
		return valueobjects.NewFailure(valueobjects.FailureConnectivity, "upstream unreachable", err)
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "quota exceeded"), strings.Contains(msg, "resourceexhausted"), strings.Contains(msg, "resource_exhausted"):
		return valueobjects.NewFailure(valueobjects.FailureServiceUnavailable, "upstream quota exhausted", err)
	case strings.Contains(msg, "fetch failed"), strings.Contains(msg, "connection refused"):
		return valueobjects.NewFailure(valueobjects.FailureConnectivity, "upstream unreachable", err)
	}

	return valueobjects.NewFailure(valueobjects.FailureInternal, "upstream request failed", err)
}

func classifyAPIError(apiErr genai.APIError, err error) error {
	switch {
	case apiErr.Code == http.StatusRequestEntityTooLarge:
		return valueobjects.NewFailure(valueobjects.FailureOversized, "upstream rejected image size", err)
	case apiErr.Code == http.StatusUnsupportedMediaType:
		return valueobjects.NewFailure(valueobjects.FailureUnsupportedType, "upstream rejected image type", err)
	case apiErr.Code == http.StatusBadRequest && strings.Contains(strings.ToLower(apiErr.Message), "mime"):
		return valueobjects.NewFailure(valueobjects.FailureUnsupportedType, "upstream rejected image type", err)
	case apiErr.Code == http.StatusGatewayTimeout:
		return valueobjects.NewFailure(valueobjects.FailureTimeout, "upstream request timed out", err)
	case apiErr.Code == http.StatusTooManyRequests, apiErr.Code >= http.StatusInternalServerError:
		return valueobjects.NewFailure(valueobjects.FailureServiceUnavailable, "upstream unavailable", err)
	}
	return valueobjects.NewFailure(valueobjects.FailureInternal, "upstream request failed", err)
}

func classifyStatus(st *status.Status, err error) error {
	switch st.Code() {
	case codes.DeadlineExceeded:
		return valueobjects.NewFailure(valueobjects.FailureTimeout, "upstream request timed out", err)
	case codes.Unavailable:
		return valueobjects.NewFailure(valueobjects.FailureConnectivity, "upstream unreachable", err)
	case codes.ResourceExhausted, codes.Internal:
		return valueobjects.NewFailure(valueobjects.FailureServiceUnavailable, "upstream unavailable", err)
	case codes.InvalidArgument:
		if strings.Contains(strings.ToLower(st.Message()), "mime") {
			return valueobjects.NewFailure(valueobjects.FailureUnsupportedType, "upstream rejected image type", err)
		}
	}
	return nil
}

// upstreamImage converts the image into a format the model accepts.
func upstreamImage(image *valueobjects.ImageData) (*valueobjects.ImageData, error) {
	converted, err := image.ForUpstream()
	if err != nil {
		return nil, valueobjects.NewFailure(valueobjects.FailureUnsupportedType, "image could not be converted for upload", err)
	}
	return converted, nil
}
