package main

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/irfansharif/huewheel/internal/app"
	"github.com/irfansharif/huewheel/internal/palette"
	"github.com/irfansharif/huewheel/internal/wheel"
)

// EventHandlers routes GLFW input to the application.
type EventHandlers struct {
	application *app.App

	// Left button state; cursor motion only matters while it is held.
	buttonHeld bool
}

// NewEventHandlers creates a new event handlers manager.
func NewEventHandlers(application *app.App) *EventHandlers {
	eh := &EventHandlers{application: application}
	eh.SetupCallbacks(application.Window)
	return eh
}

// SetupCallbacks configures all GLFW event callbacks.
func (eh *EventHandlers) SetupCallbacks(window *glfw.Window) {
	window.SetKeyCallback(func(wnd *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		eh.handleKey(key, action)
	})
	window.SetMouseButtonCallback(func(wnd *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		eh.handleMouseButton(button, action)
	})
	window.SetCursorPosCallback(func(wnd *glfw.Window, xpos, ypos float64) {
		eh.handleCursorPos(xpos, ypos)
	})
	window.SetFramebufferSizeCallback(func(wnd *glfw.Window, _, _ int) {
		eh.handleResize()
	})
	window.SetSizeCallback(func(wnd *glfw.Window, _, _ int) {
		eh.handleResize()
	})
	window.SetRefreshCallback(func(wnd *glfw.Window) {
		eh.application.Expose()
	})
}

// handleResize picks up both sizes; on HiDPI displays they differ.
func (eh *EventHandlers) handleResize() {
	w, h := eh.application.Window.GetSize()
	fbw, fbh := eh.application.Window.GetFramebufferSize()
	eh.application.Resize(w, h, fbw, fbh)
}

// handleKey handles keyboard input events.
func (eh *EventHandlers) handleKey(key glfw.Key, action glfw.Action) {
	if action != glfw.Press {
		return
	}

	// 1-6 pick a harmony rule directly, in presentation order.
	if types := palette.Types(); key >= glfw.Key1 && int(key-glfw.Key1) < len(types) {
		eh.application.SelectType(types[key-glfw.Key1])
		return
	}

	switch key {
	case glfw.KeyT:
		eh.application.CycleType()
	case glfw.KeyP:
		eh.application.NextPreset()
	case glfw.KeyR:
		eh.application.Refresh()
	case glfw.KeyC:
		eh.application.LogPalette()
	case glfw.KeyEscape:
		eh.application.Window.SetShouldClose(true)
	}
}

// handleMouseButton turns left button presses and releases into pointer
// events.
func (eh *EventHandlers) handleMouseButton(button glfw.MouseButton, action glfw.Action) {
	if button != glfw.MouseButtonLeft {
		return // nothing to do
	}

	x, y := eh.application.Window.GetCursorPos()
	switch action {
	case glfw.Press:
		eh.buttonHeld = true
		eh.application.Pointer(wheel.Down, x, y)
	case glfw.Release:
		eh.buttonHeld = false
		eh.application.Pointer(wheel.Up, x, y)
	}
}

// handleCursorPos forwards drags.
func (eh *EventHandlers) handleCursorPos(xpos, ypos float64) {
	if !eh.buttonHeld {
		return
	}
	eh.application.Pointer(wheel.Move, xpos, ypos)
}
