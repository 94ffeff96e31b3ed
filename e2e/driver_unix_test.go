//go:build e2e && unix

package main

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/creack/pty"
)

var binPath = "countrydex_e2e"

const (
	KeyEnter = "\r"
	KeyEsc   = "\x1b"
	KeyTab   = "\t"
	KeyCtrlC = "\x03"
)

const (
	termRows = 40
	termCols = 120

	seeTimeout  = 3 * time.Second
	loadTimeout = 5 * time.Second
	tailBytes   = 4096
)

// ansiRe strips CSI, OSC, charset and keypad sequences plus carriage returns
var ansiRe = regexp.MustCompile(
	`(?:\x1b\[[0-9;?]*[ -/]*[@-~])|` +
		`(?:\x1b\][^\x07]*\x07)|` +
		`(?:\x1b[\(\)][A-Za-z])|` +
		`(?:\x1b=|\x1b>)|` +
		`\r`,
)

// driver runs the countrydex binary in a pty and records everything it draws
type driver struct {
	t    *testing.T
	home string
	cmd  *exec.Cmd
	tty  *os.File
	done chan error

	mu  sync.Mutex
	out bytes.Buffer
}

// newDriver creates a driver. On failure the tail of the screen is logged.
func newDriver(t *testing.T) *driver {
	d := &driver{t: t, home: t.TempDir()}
	t.Cleanup(func() {
		if t.Failed() {
			d.dumpTail()
		}
		d.stop()
	})
	return d
}

// start launches the binary with args, isolated from the user's config
func (d *driver) start(args ...string) error {
	d.cmd = exec.Command(binPath, args...)
	d.cmd.Env = append(os.Environ(),
		"TERM=xterm-256color",
		"LC_ALL=C.UTF-8",
		"LANG=C.UTF-8",
		"HOME="+d.home,
		"XDG_CONFIG_HOME="+filepath.Join(d.home, ".config"),
	)

	tty, err := pty.StartWithSize(d.cmd, &pty.Winsize{Rows: termRows, Cols: termCols})
	if err != nil {
		return err
	}
	d.tty = tty
	d.done = make(chan error, 1)

	go d.read()
	go func() { d.done <- d.cmd.Wait() }()
	return nil
}

func (d *driver) read() {
	buf := make([]byte, 8192)
	for {
		n, err := d.tty.Read(buf)
		if n > 0 {
			d.mu.Lock()
			d.out.Write(buf[:n])
			d.mu.Unlock()
		}
		if err != nil {
			return
		}
	}
}

// Keys writes raw input to the terminal
func (d *driver) Keys(keys string) error {
	_, err := d.tty.Write([]byte(keys))
	return err
}

// Type sends text one rune at a time so every keystroke is its own key message
func (d *driver) Type(text string) error {
	for _, r := range text {
		if err := d.Keys(string(r)); err != nil {
			return err
		}
		time.Sleep(10 * time.Millisecond)
	}
	return nil
}

func (d *driver) Enter() error { return d.Keys(KeyEnter) }

// Esc sends a lone escape and pauses so it is not read as the start of a sequence
func (d *driver) Esc() error {
	err := d.Keys(KeyEsc)
	time.Sleep(50 * time.Millisecond)
	return err
}

func (d *driver) Quit() error { return d.Keys("q") }

// Ready waits for the title bar
func (d *driver) Ready() bool {
	return d.SeeWithin("countrydex", loadTimeout)
}

// Loaded waits for the footer to report n countries
func (d *driver) Loaded(n string) bool {
	return d.SeeWithin("Showing "+n+" of "+n, loadTimeout)
}

// See waits for text to appear on screen
func (d *driver) See(text string) bool {
	return d.SeeWithin(text, seeTimeout)
}

// SeeWithin polls the plain screen output for text until timeout
func (d *driver) SeeWithin(text string, timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for {
		if strings.Contains(d.Screen(), text) {
			return true
		}
		if time.Now().After(deadline) {
			return false
		}
		time.Sleep(25 * time.Millisecond)
	}
}

// Exited waits for the process to end and reports its exit error
func (d *driver) Exited(timeout time.Duration) (bool, error) {
	select {
	case err := <-d.done:
		d.done = nil
		return true, err
	case <-time.After(timeout):
		return false, nil
	}
}

// Screen returns everything drawn so far with escape sequences removed
func (d *driver) Screen() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return ansiRe.ReplaceAllString(d.out.String(), "")
}

func (d *driver) dumpTail() {
	s := d.Screen()
	if len(s) > tailBytes {
		s = s[len(s)-tailBytes:]
	}
	d.t.Logf("screen tail:\n%s", s)
}

// stop closes the pty, which hangs up the child, and reaps it
func (d *driver) stop() {
	if d.tty != nil {
		_ = d.tty.Close()
	}
	if d.cmd == nil || d.cmd.Process == nil || d.done == nil {
		return
	}
	_ = d.cmd.Process.Kill()
	<-d.done
}
