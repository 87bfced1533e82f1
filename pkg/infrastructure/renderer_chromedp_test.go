package infrastructure

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewChromedpRenderer(t *testing.T) {
	def := NewChromedpRenderer("")
	custom := NewChromedpRenderer("/usr/bin/chromium")
	assert.Equal(t, 60*time.Second, def.timeout)
	assert.Len(t, custom.allocatorOptions(), len(def.allocatorOptions())+1)
}

func TestNewRedis(t *testing.T) {
	c := NewRedis("localhost:6379", "", 3)
	defer c.Close()
	assert.Equal(t, 3, c.Options().DB)
	assert.Equal(t, "localhost:6379", c.Options().Addr)
}
