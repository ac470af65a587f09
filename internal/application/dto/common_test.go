package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseYesNo(t *testing.T) {
	for _, in := range []string{"S", "s", "Sim", "SIM", "1", " true "} {
		v, err := ParseYesNo(in)
		require.NoError(t, err, in)
		assert.True(t, v, in)
	}
	for _, in := range []string{"N", "n", "Não", "NAO", "nao", "0", "false"} {
		v, err := ParseYesNo(in)
		require.NoError(t, err, in)
		assert.False(t, v, in)
	}
	_, err := ParseYesNo("talvez")
	assert.Error(t, err)
}

func TestYesNo_UnmarshalJSON(t *testing.T) {
	var in struct {
		A *YesNo `json:"a"`
		B *YesNo `json:"b"`
		C *YesNo `json:"c"`
		D *YesNo `json:"d"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a":true,"b":"N","c":1,"d":null}`), &in))
	require.NotNil(t, in.A)
	assert.True(t, in.A.Bool())
	assert.False(t, in.B.Bool())
	assert.True(t, in.C.Bool())
	assert.Nil(t, in.D)

	var bad struct {
		A YesNo `json:"a"`
	}
	assert.Error(t, json.Unmarshal([]byte(`{"a":"x"}`), &bad))
	assert.Error(t, json.Unmarshal([]byte(`{"a":2}`), &bad))
}

func TestNumberText_UnmarshalJSON(t *testing.T) {
	var in struct {
		A NumberText  `json:"a"`
		B NumberText  `json:"b"`
		C *NumberText `json:"c"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a":"1500,50","b":1500.5}`), &in))
	assert.Equal(t, NumberText("1500,50"), in.A)
	assert.Equal(t, NumberText("1500.5"), in.B)
	assert.Nil(t, in.C)

	assert.Error(t, json.Unmarshal([]byte(`{"a":true}`), &in))
}

func TestYesNoLabel(t *testing.T) {
	assert.Equal(t, "Sim", YesNoLabel(true))
	assert.Equal(t, "Não", YesNoLabel(false))
}
