package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dkoosis/sqboot/pkg/render"
)

func TestConsole_LevelsAndVerbosity(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf, render.MonoTheme())

	c.Debugf("hidden %d", 1)
	c.Infof("starting %s", "begin")
	c.Warnf("careful")
	c.Errorf("broken: %s", "url")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "INFO")
	assert.Contains(t, out, "starting begin")
	assert.Contains(t, out, "WARN")
	assert.Contains(t, out, "careful")
	assert.Contains(t, out, "ERROR")
	assert.Contains(t, out, "broken: url")

	buf.Reset()
	c.SetVerbosity(Debug)
	c.Debugf("visible %d", 2)
	assert.Contains(t, buf.String(), "visible 2")
	assert.Contains(t, buf.String(), "DEBUG")

	buf.Reset()
	c.SetVerbosity(Info)
	c.Debugf("hidden again")
	assert.Empty(t, buf.String())
}

func TestConsole_MonoThemeHasNoEscapes(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf, render.MonoTheme())
	c.Warnf("plain")

	assert.False(t, strings.Contains(buf.String(), "\033["), "mono output must not contain ANSI codes")
}

func TestRecorder(t *testing.T) {
	r := NewRecorder()
	r.Debugf("d%d", 1)
	r.Infof("i")
	r.Warnf("w %s", "x")
	r.Errorf("e")
	r.Errorf("e2")

	assert.Equal(t, []string{"d1"}, r.Debugs)
	assert.Equal(t, []string{"i"}, r.Infos)
	assert.Equal(t, []string{"w x"}, r.Warnings)
	assert.Len(t, r.Errors, 2)
}

func TestVerbosityString(t *testing.T) {
	assert.Equal(t, "info", Info.String())
	assert.Equal(t, "debug", Debug.String())
}

func TestTee(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf, render.MonoTheme())
	r := NewRecorder()
	l := Tee(c, r)

	l.Debugf("quiet")
	l.Infof("hello")
	l.Warnf("w")
	l.Errorf("e %d", 1)

	assert.Equal(t, []string{"quiet"}, r.Debugs)
	assert.Equal(t, []string{"e 1"}, r.Errors)
	assert.NotContains(t, buf.String(), "quiet")
	assert.Contains(t, buf.String(), "e 1")
	assert.Equal(t, []string{"w"}, r.Warnings)
}
