package display

type hostDisplay struct {
	fb  *hostFramebuffer
	kbd *hostKeyboard
}

func newHost(width, height int) *hostDisplay {
	return &hostDisplay{
		fb:  newHostFramebuffer(width, height),
		kbd: newHostKeyboard(),
	}
}

func (d *hostDisplay) Framebuffer() Framebuffer { return d.fb }
func (d *hostDisplay) Keyboard() Keyboard       { return d.kbd }
