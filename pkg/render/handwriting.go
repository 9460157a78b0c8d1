package render

import "github.com/matzehuels/inkwell/pkg/canvas"

type handwritingPose struct {
	reveal float64 // revealed fraction of the text width
	tip    bool    // draw the pen tip at the reveal edge
}

func handwritingAt(p float64) handwritingPose {
	return handwritingPose{reveal: p, tip: p > 0 && p < 1}
}

func drawHandwriting(f *frame, p float64) {
	pose := handwritingAt(p)
	c := f.c
	tw := f.textWidth()
	left := f.cx - tw/2

	if pose.reveal < 1 {
		c.ClipRect(left, 0, tw*pose.reveal, f.h)
	}
	c.SetFill(canvas.Solid(f.base))
	c.FillText(f.s.Text, f.cx, f.cy)

	if pose.tip {
		c.FillCircle(left+tw*pose.reveal, f.cy, f.s.StrokeWidth*1.5)
	}
}
