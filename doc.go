// Package usbrelay drives USB-attached relay boards (2, 4 or 8 relay
// variants) over a serial link.
//
// The boards speak a small single-byte protocol at 9600 baud: a probe
// byte identifies the variant, and one command byte carries the on/off
// state of every relay. Boards with more than 2 relays invert the
// command byte on the wire (a bit value of 0 switches the relay on);
// the 2-relay variant uses the direct encoding. The Controller type
// hides this quirk behind SetState/State.
//
// A typical session:
//
//	c := usbrelay.New("/dev/ttyACM0", 8)
//	if err := c.Open(); err != nil { ... }
//	defer c.Close()
//	if _, err := c.Init(); err != nil { ... }
//	c.SetState(0b00000101) // relays 1 and 3 on
package usbrelay
