package wikiwords_test

import (
	"testing"

	"github.com/fwojciec/wikiwords"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := wikiwords.Errorf(wikiwords.ENOTFOUND, "page %q not found", "test")

	assert.Equal(t, wikiwords.ENOTFOUND, wikiwords.ErrorCode(err))
	assert.Equal(t, "page \"test\" not found", wikiwords.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, wikiwords.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, wikiwords.EINTERNAL, wikiwords.ErrorCode(assert.AnError))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, wikiwords.ErrorMessage(nil))
}
