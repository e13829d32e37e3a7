package vecpdf

import "github.com/lvillar/vecpdf/content"

// Named page sizes in points.
const (
	PageSizeLetter = "Letter"
	PageSizeA4     = "A4"
	PageSizeLegal  = "Legal"
)

var pageSizes = map[string][2]float64{
	PageSizeLetter: {612, 792},
	PageSizeA4:     {595, 842},
	PageSizeLegal:  {612, 1008},
}

// Option is a functional option for configuring a Generator.
type Option func(*generatorConfig)

type generatorConfig struct {
	width    float64
	height   float64
	margins  [4]float64 // top, right, bottom, left
	producer string
	images   content.ImageResolver
}

// WithPageSize sets the default page size by name. Use PageSizeLetter,
// PageSizeA4 or PageSizeLegal. Unknown names keep the current default.
func WithPageSize(size string) Option {
	return func(c *generatorConfig) {
		if dims, ok := pageSizes[size]; ok {
			c.width, c.height = dims[0], dims[1]
		}
	}
}

// WithPageSizeCustom sets a custom default page size in points.
func WithPageSizeCustom(width, height float64) Option {
	return func(c *generatorConfig) {
		c.width, c.height = width, height
	}
}

// WithMargins sets the default page margins in points.
func WithMargins(top, right, bottom, left float64) Option {
	return func(c *generatorConfig) {
		c.margins = [4]float64{top, right, bottom, left}
	}
}

// WithProducer sets the Producer string written to the Info object of
// documents that do not set their own.
func WithProducer(producer string) Option {
	return func(c *generatorConfig) {
		c.producer = producer
	}
}

// WithImageResolver enables image elements in the content-stream API by
// supplying the resolver that maps sources to XObject resource names.
func WithImageResolver(r content.ImageResolver) Option {
	return func(c *generatorConfig) {
		c.images = r
	}
}
