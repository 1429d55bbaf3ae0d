package env_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/docscan-portal/pkg/env"
)

func TestParse_ReturnsValue(t *testing.T) {
	t.Setenv("TEST_ENV_INT", "10")

	value, err := env.Parse[int]("TEST_ENV_INT")
	require.NoError(t, err)
	assert.Equal(t, 10, value)
}

func TestParse_ReturnsErrorWhenNotFound(t *testing.T) {
	_, err := env.Parse[string]("TEST_ENV_NOT_EXISTING")
	assert.Error(t, err)
}

func TestParseOptional_ReturnsNilWhenNotSet(t *testing.T) {
	value, err := env.ParseOptional[*time.Duration]("TEST_ENV_NOT_EXISTING")
	require.NoError(t, err)
	assert.Nil(t, value)
}

func TestParseOptional_ReturnsPointer(t *testing.T) {
	t.Setenv("TEST_ENV_DURATION", "5m")

	value, err := env.ParseOptional[*time.Duration]("TEST_ENV_DURATION")
	require.NoError(t, err)
	require.NotNil(t, value)
	assert.Equal(t, 5*time.Minute, *value)
}

func TestParseList_SkipsEmptyItems(t *testing.T) {
	t.Setenv("TEST_ENV_LIST", "https://a.example, ,https://b.example")

	value, err := env.ParseList[string]("TEST_ENV_LIST", ",")
	require.NoError(t, err)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, value)
}

func TestMust_PanicsOnError(t *testing.T) {
	assert.Panics(t, func() {
		env.Must(env.Parse[int]("TEST_ENV_NOT_EXISTING"))
	})
}
