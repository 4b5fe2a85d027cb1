package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTodo(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		want    string
		wantErr error
	}{
		{name: "plain", title: "buy milk", want: "buy milk"},
		{name: "trimmed", title: "  buy milk \t", want: "buy milk"},
		{name: "empty", title: "", wantErr: ErrEmptyTitle},
		{name: "whitespace only", title: " \n\t ", wantErr: ErrEmptyTitle},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			td, err := NewTodo(tt.title)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, td)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, td.Title)
			assert.False(t, td.Done)
		})
	}
}

func TestNewTodoIDsAreDistinct(t *testing.T) {
	a, err := NewTodo("a")
	require.NoError(t, err)
	b, err := NewTodo("a")
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestSetTitle(t *testing.T) {
	td, err := NewTodo("old")
	require.NoError(t, err)

	assert.True(t, td.SetTitle("  new  "))
	assert.Equal(t, "new", td.Title)

	assert.False(t, td.SetTitle("   "))
	assert.Equal(t, "new", td.Title, "blank title must not overwrite")
}

func TestSetCompleted(t *testing.T) {
	td, err := NewTodo("x")
	require.NoError(t, err)
	td.SetCompleted(true)
	assert.True(t, td.Done)
	td.SetCompleted(false)
	assert.False(t, td.Done)
}
