// Package ui is the accreditation dashboard's Bubble Tea front end.
//
// Building blocks:
//   - View: a screen or modal with its own Elm-style update and view
//   - OverlayStack: modals; the topmost receives keys first
//   - FocusRing: rotates focus across regions of a view or form fields
//   - KeyHandler: SPC leader sequences and single-key global bindings
//
// AppModel owns three screens (organization search, roster, analytics)
// and turns the messages they emit into Backend calls.
package ui
