package processor

type Option func(*ImageProcessor)

// Quality sets JPEG quality for derivatives, 1..100.
func Quality(q int) Option {
	return func(p *ImageProcessor) {
		if q >= 1 && q <= 100 {
			p.quality = q
		}
	}
}
