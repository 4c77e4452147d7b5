package share

import "context"

// ClientProbe is the Sharer backed by the requesting client itself: the
// capability answer comes from the client's own probe, and a share "succeeds"
// by handing the file back for the client to finish on its native share UI.
type ClientProbe struct {
	canShare bool
}

func NewClientProbe(canShare bool) *ClientProbe {
	return &ClientProbe{canShare: canShare}
}

func (p *ClientProbe) CanShareFiles(ctx context.Context) bool {
	return p.canShare
}

func (p *ClientProbe) ShareFile(ctx context.Context, f File, title, text string) error {
	return nil
}
