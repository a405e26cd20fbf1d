// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package game

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
)

// errInterrupted is returned by the interactive reader on Ctrl+C.
var errInterrupted = errors.New("interrupted")

// =============================================================================
// InputReader Interface
// =============================================================================

// InputReader abstracts reading one guess per line.
//
// # Description
//
// The production implementations read stdin; tests use MockInputReader.
//
// # Outputs
//
// ReadLine returns the line with surrounding whitespace trimmed. Any error,
// io.EOF included, is final for the game.
type InputReader interface {
	ReadLine() (string, error)
}

// PromptingInputReader is implemented by readers that draw their own prompt.
// The runner hands them the prompt instead of writing it to the UI.
type PromptingInputReader interface {
	InputReader
	SetPrompt(prompt string)
}

// NewInputReader picks a reader for in.
//
// When in is a terminal it returns an InteractiveInputReader with line
// editing and guess history. Otherwise (pipes, files, tests) it returns a
// LineReader.
func NewInputReader(in io.Reader, maxHistory int) InputReader {
	if f, ok := in.(*os.File); ok {
		if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
			return NewInteractiveInputReader(f, maxHistory)
		}
	}
	return NewLineReader(in)
}

// =============================================================================
// LineReader Implementation
// =============================================================================

// LineReader reads newline-terminated lines from any io.Reader.
//
// Not thread-safe. Create one per stream: the bufio.Reader buffers ahead.
type LineReader struct {
	reader *bufio.Reader
}

// NewLineReader wraps r.
func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{reader: bufio.NewReader(r)}
}

// ReadLine reads up to and including the next newline.
//
// A final line without a trailing newline is returned before io.EOF.
func (r *LineReader) ReadLine() (string, error) {
	line, err := r.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// =============================================================================
// InteractiveInputReader Implementation (with history)
// =============================================================================

// InteractiveInputReader reads guesses through a bubbletea text input.
//
// # Description
//
// Provides line editing and up/down navigation through previous guesses.
// Only used when stdin is a TTY; see NewInputReader.
//
// Keys:
//   - Enter submits the line
//   - Up / Down walk the guess history
//   - Ctrl+D returns io.EOF
//   - Ctrl+C returns an "interrupted" error
//
// # Limitations
//
//   - History is in memory only
//   - The prompt and input are drawn on stderr and cleared on submit
type InteractiveInputReader struct {
	in         *os.File
	history    []string
	maxHistory int
	prompt     string
}

// guessInputModel is the bubbletea model behind InteractiveInputReader.
type guessInputModel struct {
	textInput    textinput.Model
	history      []string
	historyIndex int    // -1 means editing a new line
	currentInput string // saved while browsing history
	done         bool
	eof          bool
	interrupted  bool
}

// NewInteractiveInputReader creates an interactive reader on in.
func NewInteractiveInputReader(in *os.File, maxHistory int) *InteractiveInputReader {
	return &InteractiveInputReader{
		in:         in,
		history:    make([]string, 0, maxHistory),
		maxHistory: maxHistory,
		prompt:     "> ",
	}
}

// SetPrompt implements PromptingInputReader.
func (r *InteractiveInputReader) SetPrompt(prompt string) {
	r.prompt = prompt
}

// ReadLine runs one bubbletea program and returns the submitted line.
func (r *InteractiveInputReader) ReadLine() (string, error) {
	ti := textinput.New()
	ti.Prompt = r.prompt
	ti.Focus()
	ti.CharLimit = 64
	ti.Width = 32

	m := guessInputModel{
		textInput:    ti,
		history:      r.history,
		historyIndex: -1,
	}

	p := tea.NewProgram(m, tea.WithInput(r.in), tea.WithOutput(os.Stderr))
	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	result, ok := finalModel.(guessInputModel)
	if !ok {
		return "", fmt.Errorf("unexpected model type from bubbletea: %T", finalModel)
	}
	if result.interrupted {
		return "", errInterrupted
	}
	if result.eof {
		return "", io.EOF
	}

	input := strings.TrimSpace(result.textInput.Value())
	if input != "" {
		r.addToHistory(input)
	}
	return input, nil
}

func (r *InteractiveInputReader) addToHistory(input string) {
	if len(r.history) > 0 && r.history[len(r.history)-1] == input {
		return
	}
	r.history = append(r.history, input)
	if len(r.history) > r.maxHistory {
		r.history = r.history[1:]
	}
}

func (m guessInputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m guessInputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			m.done = true
			return m, tea.Quit

		case tea.KeyCtrlC:
			m.interrupted = true
			m.done = true
			return m, tea.Quit

		case tea.KeyCtrlD:
			m.eof = true
			m.done = true
			return m, tea.Quit

		case tea.KeyUp:
			if len(m.history) == 0 {
				return m, nil
			}
			if m.historyIndex == -1 {
				m.currentInput = m.textInput.Value()
				m.historyIndex = len(m.history) - 1
			} else if m.historyIndex > 0 {
				m.historyIndex--
			}
			m.textInput.SetValue(m.history[m.historyIndex])
			m.textInput.CursorEnd()
			return m, nil

		case tea.KeyDown:
			if m.historyIndex == -1 {
				return m, nil
			}
			if m.historyIndex < len(m.history)-1 {
				m.historyIndex++
				m.textInput.SetValue(m.history[m.historyIndex])
			} else {
				m.historyIndex = -1
				m.textInput.SetValue(m.currentInput)
			}
			m.textInput.CursorEnd()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m guessInputModel) View() string {
	if m.done {
		return ""
	}
	return m.textInput.View()
}

// =============================================================================
// MockInputReader Implementation (for testing)
// =============================================================================

// MockInputReader returns predetermined lines, then io.EOF.
//
// Not thread-safe.
type MockInputReader struct {
	inputs []string
	index  int
}

// NewMockInputReader creates a MockInputReader over inputs.
func NewMockInputReader(inputs []string) *MockInputReader {
	return &MockInputReader{inputs: inputs}
}

// ReadLine returns the next input, trimmed, or io.EOF when exhausted.
func (m *MockInputReader) ReadLine() (string, error) {
	if m.index >= len(m.inputs) {
		return "", io.EOF
	}
	line := m.inputs[m.index]
	m.index++
	return strings.TrimSpace(line), nil
}

// Remaining returns how many inputs have not been read.
func (m *MockInputReader) Remaining() int {
	return len(m.inputs) - m.index
}
