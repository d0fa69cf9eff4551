package httpclient_test

import (
	"net/http"
	"testing"

	"github.com/andyle182810/liquidplanner/httpclient"
	"github.com/stretchr/testify/require"
)

func TestNewResult_DecodesJSONScalars(t *testing.T) {
	t.Parallel()

	result := httpclient.NewResult(http.StatusOK, nil, []byte(`"ok"`), "")

	require.True(t, result.IsJSON())
	require.Equal(t, "ok", result.Value)
}

func TestNewResult_TreatsJSONNullAsDecoded(t *testing.T) {
	t.Parallel()

	result := httpclient.NewResult(http.StatusOK, nil, []byte(`null`), "")

	require.True(t, result.IsJSON())
	require.Nil(t, result.Value)
}

func TestNewResult_KeepsEmptyBodyAsRaw(t *testing.T) {
	t.Parallel()

	result := httpclient.NewResult(http.StatusOK, nil, []byte{}, "")

	require.False(t, result.IsJSON())
	require.Empty(t, result.String())
}

func TestResult_MapAndSliceReportShape(t *testing.T) {
	t.Parallel()

	object := httpclient.NewResult(http.StatusOK, nil, []byte(`{"id":1}`), "")
	_, isMap := object.Map()
	_, isSlice := object.Slice()

	require.True(t, isMap)
	require.False(t, isSlice)

	list := httpclient.NewResult(http.StatusOK, nil, []byte(`[1,2]`), "")
	_, isMap = list.Map()
	_, isSlice = list.Slice()

	require.False(t, isMap)
	require.True(t, isSlice)
}

func TestResult_DecodeRejectsRawBody(t *testing.T) {
	t.Parallel()

	result := httpclient.NewResult(http.StatusOK, nil, []byte(`<html>`), "")

	var target map[string]any
	err := result.Decode(&target)

	require.ErrorIs(t, err, httpclient.ErrDecodeResponse)
}

func TestResult_ErrIsNilForSuccess(t *testing.T) {
	t.Parallel()

	result := httpclient.NewResult(http.StatusCreated, nil, []byte(`{}`), "req-1")

	require.NoError(t, result.Err())
}

func TestResult_ErrUsesRawBodyWhenNoMessage(t *testing.T) {
	t.Parallel()

	result := httpclient.NewResult(http.StatusBadGateway, nil, []byte(`Bad Gateway`), "req-1")

	svcErr, ok := httpclient.IsServiceError(result.Err())

	require.True(t, ok)
	require.Equal(t, http.StatusBadGateway, svcErr.StatusCode)
	require.Equal(t, "Bad Gateway", svcErr.Message)
	require.Equal(t, "req-1", svcErr.RequestID)
}

func TestServiceError_ReturnsDefaultMessageWhenMessageIsEmpty(t *testing.T) {
	t.Parallel()

	err := httpclient.NewServiceError(500, "", "req-123")

	require.Equal(t, "httpclient: service returned status 500", err.Error())
	require.ErrorIs(t, err, httpclient.ErrServiceError)
}

func TestThrottledError_MatchesErrThrottled(t *testing.T) {
	t.Parallel()

	err := &httpclient.ThrottledError{Attempts: 2, TotalWait: 0, Message: "Try again in 1 seconds"}

	require.ErrorIs(t, err, httpclient.ErrThrottled)
	require.Contains(t, err.Error(), "2 attempts")
}
