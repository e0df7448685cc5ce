// Package widget implements a dropdown multi-selection widget bound to an
// element.Select.
//
// A Widget renders the element's options and groups into a popup model of
// checkable rows, reacts to input delivered through its router methods, and
// writes the checked values back onto the element after every change. Hosts
// render the Choice and Popup models however they like; geometry queries go
// through a layout.Host and document clicks arrive on an inputbus.Bus.
//
// A Widget is not safe for concurrent use.
package widget
