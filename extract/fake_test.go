package extract_test

import (
	"time"

	"github.com/pevans/newswatch/browse"
)

// fakeElement is an in-memory stand-in for a DOM element handle.
type fakeElement struct {
	text     string
	attrs    map[string]string
	closest  map[string]*fakeElement
	children map[string][]*fakeElement
}

func (e *fakeElement) Text() (string, error) {
	return e.text, nil
}

func (e *fakeElement) Attribute(name string) (*string, error) {
	v, ok := e.attrs[name]
	if !ok {
		return nil, nil
	}
	return &v, nil
}

func (e *fakeElement) Closest(selector string) (browse.Element, error) {
	el, ok := e.closest[selector]
	if !ok || el == nil {
		return nil, nil
	}
	return el, nil
}

func (e *fakeElement) First(selector string) (browse.Element, error) {
	els := e.children[selector]
	if len(els) == 0 {
		return nil, nil
	}
	return els[0], nil
}

// fakeSession serves canned elements per selector and scripted errors for
// navigation and waits.
type fakeSession struct {
	navErr    error
	waitErrs  map[string]error
	elements  map[string][]*fakeElement
	navigated []string
	waited    []string
}

func (s *fakeSession) Navigate(url string, _ time.Duration) error {
	s.navigated = append(s.navigated, url)
	return s.navErr
}

func (s *fakeSession) WaitFor(selector string, _ time.Duration) error {
	s.waited = append(s.waited, selector)
	return s.waitErrs[selector]
}

func (s *fakeSession) Elements(selector string) ([]browse.Element, error) {
	els := s.elements[selector]
	out := make([]browse.Element, 0, len(els))
	for _, el := range els {
		out = append(out, el)
	}
	return out, nil
}
