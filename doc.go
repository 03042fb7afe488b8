/*
Package hdlsim provides a discrete-event simulation kernel to describe and run
concurrent hardware-like processes using Go as a hardware description language.

A simulation is made of Signals and Processes. Signals are time-varying values
(single bits or buses up to 64 bits). Processes are reactive loops: each one
sleeps until one of the triggers in its sensitivity fires (a delay, any change
of a signal, or a rising or falling edge), runs one reaction, and declares the
sensitivity it must be resumed on next.

	clk := hdlsim.NewSignal("clk", false)
	driver := hdlsim.Always("driver", func(c *hdlsim.Context) {
		c.Toggle(clk)
	}, hdlsim.Delay(20))
	hello := hdlsim.Always("hello", func(c *hdlsim.Context) {
		fmt.Printf("%d Hello World!\n", c.Now())
	}, clk.Negedge())

	sim, err := hdlsim.NewSimulation(hdlsim.Processes{driver, hello})
	if err != nil {
		// handle error
	}
	err = sim.Run(100) // prints "40 Hello World!" and "80 Hello World!"

Signal writes are non-blocking assignments: a value written during a reaction
only becomes visible one delta cycle later, when the scheduler commits it. All
processes woken at the same instant therefore read the same values, whatever
the order in which they run. Within a given time, delta cycles repeat until no
more signal changes are pending before simulated time advances.

Scheduling is single-threaded and fully deterministic: events are executed in
(time, delta cycle, insertion) order.
*/
package hdlsim
