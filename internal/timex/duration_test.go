package timex

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDurationUnmarshal(t *testing.T) {
	var v struct {
		D Duration `json:"d"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"d":"10s"}`), &v))
	require.Equal(t, 10*time.Second, v.D.Duration)

	require.NoError(t, json.Unmarshal([]byte(`{"d":3000000000}`), &v))
	require.Equal(t, 3*time.Second, v.D.Duration)

	require.Error(t, json.Unmarshal([]byte(`{"d":true}`), &v))
	require.Error(t, json.Unmarshal([]byte(`{"d":"nope"}`), &v))
}

func TestDurationMarshal(t *testing.T) {
	b, err := json.Marshal(Duration{5 * time.Minute})
	require.NoError(t, err)
	require.Equal(t, `"5m0s"`, string(b))
}
