package core

import (
	"testing"

	"github.com/smartystreets/assertions/should"
	"github.com/smartystreets/gunit"
)

func TestHumanFileSizeFixture(t *testing.T) {
	gunit.Run(new(HumanFileSizeFixture), t)
}

type HumanFileSizeFixture struct {
	*gunit.Fixture
}

func (this *HumanFileSizeFixture) TestFormatting() {
	cases := map[float64]string{
		0:               "0 B",
		1:               "1 B",
		512:             "512 B",
		1024:            "1 KB",
		1536:            "1.5 KB",
		1024 * 1024:     "1 MB",
		5 * 1024 * 1024: "5 MB",
	}
	for size, expected := range cases {
		this.So(humanFileSize(size), should.Equal, expected)
	}
}
