// Package switchable demonstrates dependency inversion with a capability interface.
//
// A Switch controls any Switchable device. It depends only on the On/Off contract and
// never on Lamp or Fan directly, so new devices plug in without touching the controller:
//
//	lamp := switchable.Lamp{}
//	sw := switchable.NewSwitch(lamp)
//	sw.Toggle() // Lamp On
//	sw.Toggle() // Lamp Off
//
// Devices report their side effects as log lines through a package logger writing to
// stdout by default; SetOutput redirects it.
//
// Catalog resolves devices by name for wiring from configuration.
package switchable
