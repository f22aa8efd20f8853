/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */
package ui

import (
	"errors"
	"testing"

	gc "github.com/rthornton128/goncurses"
	"github.com/stretchr/testify/assert"
)

func TestKeymapDispatch(t *testing.T) {
	k := NewKeymap()
	calls := 0
	k.BindKey("a", "first", func() error { calls++; return nil })
	k.BindKey("a", "second", func() error { calls += 10; return nil })
	boom := errors.New("boom")
	k.BindKey("b", "fails", func() error { return boom })

	assert.NoError(t, k.Dispatch("a"))
	assert.Equal(t, 10, calls)
	assert.ErrorIs(t, k.Dispatch("b"), boom)
	assert.ErrorIs(t, k.Dispatch("z"), ErrUnboundKey)
	assert.True(t, k.IsBound("b"))
	assert.Equal(t, []string{"a: second", "b: fails"}, k.Help())
}

func TestKeyName(t *testing.T) {
	tests := []struct {
		key  gc.Key
		want string
	}{
		{gc.Key('a'), "a"},
		{gc.Key('*'), "*"},
		{gc.Key(' '), "space"},
		{gc.Key(0), "C-space"},
		{gc.Key(3), "C-c"},
		{gc.KEY_UP, "up"},
		{gc.KEY_RETURN, "enter"},
		{gc.Key(27), "esc"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, KeyName(nil, tt.key))
	}
}
