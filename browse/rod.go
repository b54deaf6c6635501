package browse

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// RodSession drives a real browser page through go-rod. One session (one
// page) is shared across all targets of a run.
type RodSession struct {
	launcher *launcher.Launcher
	browser  *rod.Browser
	page     *rod.Page
}

// NewRodSession launches a headless browser and opens a blank page.
func NewRodSession() (*RodSession, error) {
	l := launcher.New()
	controlURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	browser := rod.New().ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return nil, fmt.Errorf("failed to connect to browser: %w", err)
	}

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		browser.Close()
		l.Kill()
		return nil, fmt.Errorf("failed to open page: %w", err)
	}

	return &RodSession{launcher: l, browser: browser, page: page}, nil
}

// Close shuts down the browser and its launcher process.
func (s *RodSession) Close() {
	if s.browser != nil {
		s.browser.Close()
	}
	if s.launcher != nil {
		s.launcher.Kill()
	}
}

// Navigate loads url and waits for DOMContentLoaded, bounded by timeout.
func (s *RodSession) Navigate(url string, timeout time.Duration) error {
	page := s.page.Timeout(timeout)
	wait := page.WaitNavigation(proto.PageLifecycleEventNameDOMContentLoaded)
	if err := page.Navigate(url); err != nil {
		return asTimeout(err)
	}
	wait()
	return nil
}

// WaitFor blocks until selector matches at least one element.
func (s *RodSession) WaitFor(selector string, timeout time.Duration) error {
	if _, err := s.page.Timeout(timeout).Element(selector); err != nil {
		return asTimeout(err)
	}
	return nil
}

// Elements returns the current matches for selector without waiting.
func (s *RodSession) Elements(selector string) ([]Element, error) {
	els, err := s.page.Elements(selector)
	if err != nil {
		return nil, fmt.Errorf("failed to query %q: %w", selector, err)
	}

	handles := make([]Element, 0, len(els))
	for _, el := range els {
		handles = append(handles, &rodElement{el: el})
	}
	return handles, nil
}

// asTimeout maps rod's deadline errors onto ErrTimeout so callers can
// classify retryability without importing rod.
func asTimeout(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrTimeout
	}
	return err
}

type rodElement struct {
	el *rod.Element
}

func (e *rodElement) Text() (string, error) {
	return e.el.Text()
}

func (e *rodElement) Attribute(name string) (*string, error) {
	return e.el.Attribute(name)
}

func (e *rodElement) Closest(selector string) (Element, error) {
	// rod reports a null closest() result as an element-not-found error;
	// either way there is no ancestor to return.
	el, err := e.el.ElementByJS(rod.Eval(`sel => this.closest(sel)`, selector))
	if err != nil {
		return nil, nil
	}
	return &rodElement{el: el}, nil
}

func (e *rodElement) First(selector string) (Element, error) {
	els, err := e.el.Elements(selector)
	if err != nil || len(els) == 0 {
		return nil, nil
	}
	return &rodElement{el: els[0]}, nil
}
