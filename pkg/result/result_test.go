package result

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuccess(t *testing.T) {
	res := Success(CreationSuccess, "payload")
	assert.Equal(t, CreationSuccess, res.Code)
	assert.Equal(t, "payload", res.Entity)
	assert.Empty(t, res.ErrorMessage)
	assert.False(t, res.Failed())
}

func TestFailure(t *testing.T) {
	res := Failure[string](CreationFailure, "something went wrong")
	assert.Equal(t, CreationFailure, res.Code)
	assert.Equal(t, "something went wrong", res.ErrorMessage)
	assert.Empty(t, res.Entity)
	assert.True(t, res.Failed())
}

func TestFailed(t *testing.T) {
	failures := []Code{CreationFailure, FetchFailure, UpdateFailure, DeletionFailure}
	for _, code := range failures {
		assert.True(t, Failure[int](code, "boom").Failed(), string(code))
	}

	successes := []Code{CreationSuccess, FetchSuccess, UpdateSuccess, DeletionSuccess}
	for _, code := range successes {
		assert.False(t, Success(code, 1).Failed(), string(code))
	}
}

func TestCodeSerialization(t *testing.T) {
	data, err := json.Marshal(Failure[string](FetchFailure, "not found"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"code":"FETCH_FAILURE","errorMessage":"not found"}`, string(data))

	data, err = json.Marshal(Success(FetchSuccess, "found"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"code":"FETCH_SUCCESS","entity":"found"}`, string(data))
}
