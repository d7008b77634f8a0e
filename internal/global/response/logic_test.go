package response

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorIs(t *testing.T) {
	wrapped := ErrDatabase.WithOrigin(errors.New("connection refused"))
	require.ErrorIs(t, wrapped, ErrDatabase)
	require.NotErrorIs(t, wrapped, ErrNotFound)
}

func TestWithOriginKeepsCause(t *testing.T) {
	cause := errors.New("duplicate key")
	wrapped := ErrAlreadyExists.WithOrigin(cause)

	require.ErrorIs(t, wrapped, cause)
	require.Contains(t, wrapped.Origin, "duplicate key")
	// 原始错误对象不被污染
	require.Empty(t, ErrAlreadyExists.Origin)
}

func TestWithOriginNil(t *testing.T) {
	require.Same(t, ErrInternal, ErrInternal.WithOrigin(nil))
}

func TestWithTips(t *testing.T) {
	withTips := ErrInvalidRequest.WithTips("start_date 不能晚于 end_date")
	require.Equal(t, ErrInvalidRequest.Code, withTips.Code)
	require.Contains(t, withTips.Message, "start_date 不能晚于 end_date")
	require.ErrorIs(t, withTips, ErrInvalidRequest)
}

func TestErrorString(t *testing.T) {
	require.Equal(t, fmt.Sprintf("code:%d, msg:%s", ErrNotFound.Code, ErrNotFound.Message), ErrNotFound.Error())
}
