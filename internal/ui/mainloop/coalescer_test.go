package mainloop

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoalescer_MergesBurstIntoOneTask(t *testing.T) {
	var queue []func()
	c := NewCoalescer(func(fn func()) { queue = append(queue, fn) })

	title := ""
	for _, v := range []string{"Loading", "Exa", "Example Domain"} {
		c.Post("title:tab-1", func() { title = v })
	}

	require.Len(t, queue, 1)
	assert.Equal(t, 1, c.Pending())
	queue[0]()
	assert.Equal(t, "Example Domain", title)
	assert.Zero(t, c.Pending())
}

func TestCoalescer_KeysAreIndependent(t *testing.T) {
	var queue []func()
	c := NewCoalescer(func(fn func()) { queue = append(queue, fn) })

	var ran []string
	c.Post("title:tab-1", func() { ran = append(ran, "tab-1") })
	c.Post("title:tab-2", func() { ran = append(ran, "tab-2") })
	require.Len(t, queue, 2)

	for _, fn := range queue {
		fn()
	}
	assert.Equal(t, []string{"tab-1", "tab-2"}, ran)

	c.Post("title:tab-1", func() {})
	assert.Len(t, queue, 3, "a key reopens once its task ran")
}

func TestCoalescer_DropsWorkAfterDestroy(t *testing.T) {
	var queue []func()
	c := NewCoalescer(func(fn func()) { queue = append(queue, fn) })

	ran := false
	c.Post("title:tab-1", func() { ran = true })
	c.Destroy()
	require.Len(t, queue, 1)
	queue[0]()
	assert.False(t, ran)

	c.Post("title:tab-1", func() { ran = true })
	assert.Len(t, queue, 1)
}

func TestCoalescer_IgnoresEmptyInput(t *testing.T) {
	var queue []func()
	c := NewCoalescer(func(fn func()) { queue = append(queue, fn) })
	c.Post("", func() {})
	c.Post("title:tab-1", nil)
	assert.Empty(t, queue)
}

func TestNewCoalescer_PanicsOnNilPost(t *testing.T) {
	assert.Panics(t, func() { NewCoalescer(nil) })
}

func TestPoster_SendsTasks(t *testing.T) {
	var sent []tea.Msg
	p := NewPoster(func(msg tea.Msg) { sent = append(sent, msg) })

	hits := 0
	p.Post(func() { hits++ })
	p.Post(nil)
	require.Len(t, sent, 1)

	assert.True(t, Run(sent[0]))
	assert.Equal(t, 1, hits)
	assert.False(t, Run(tea.KeyMsg{}))
}
