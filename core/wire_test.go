package core

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestID_MarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		id   ID
		want string
	}{
		{"zero", 0, `"0"`},
		{"small", 7, `"7"`},
		{"large", 123456, `"123456"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestID_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		want    ID
		wantErr bool
	}{
		{name: "string", data: `"42"`, want: 42},
		{name: "number", data: `42`, want: 42},
		{name: "null", data: `null`, want: 0},
		{name: "empty string", data: `""`, want: 0},
		{name: "garbage", data: `"abc"`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var id ID
			err := json.Unmarshal([]byte(tt.data), &id)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, id)
		})
	}
}

func TestFlag_MarshalJSON(t *testing.T) {
	got, err := json.Marshal(Flag(true))
	require.NoError(t, err)
	assert.Equal(t, "1", string(got))

	got, err = json.Marshal(Flag(false))
	require.NoError(t, err)
	assert.Equal(t, "0", string(got))
}

func TestFlag_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		data string
		want Flag
	}{
		{name: "int zero", data: `0`, want: false},
		{name: "int one", data: `1`, want: true},
		{name: "int other", data: `7`, want: true},
		{name: "string zero", data: `"0"`, want: false},
		{name: "string false", data: `"false"`, want: false},
		{name: "empty string", data: `""`, want: false},
		{name: "string one", data: `"1"`, want: true},
		{name: "string true", data: `"true"`, want: true},
		{name: "string other", data: `"yes"`, want: true},
		{name: "bool true", data: `true`, want: true},
		{name: "bool false", data: `false`, want: false},
		{name: "null", data: `null`, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f Flag
			err := json.Unmarshal([]byte(tt.data), &f)
			require.NoError(t, err)
			assert.Equal(t, tt.want, f)
		})
	}
}

func TestFlag_roundTrip(t *testing.T) {
	type payload struct {
		HasRfid Flag `json:"hasRfid"`
	}

	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"hasRfid":"1"}`), &p))
	assert.True(t, p.HasRfid.Bool())

	out, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"hasRfid":1}`, string(out))
}
