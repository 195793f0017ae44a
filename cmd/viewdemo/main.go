// Command viewdemo exercises the viewkit API end to end: element-wise
// mutation through a view, aliasing through a reinterpreted byte lens, and
// the text queries. Output formatting here is illustrative only.
package main

import (
	"flag"
	"os"

	"github.com/fatih/color"
	"github.com/pelletier/go-toml/v2"
	"github.com/sirupsen/logrus"

	"github.com/rawbytedev/viewkit"
)

func init() {
	logrus.SetOutput(os.Stdout)
}

// scenario is the optional TOML-configurable input set.
type scenario struct {
	Numbers []int32 `toml:"numbers"`
	Text    string  `toml:"text"`
}

func loadScenario(path string) (scenario, error) {
	sc := scenario{
		Numbers: []int32{1, 2, 3},
		Text:    "hello World",
	}
	if path == "" {
		return sc, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return sc, err
	}
	err = toml.Unmarshal(raw, &sc)
	return sc, err
}

func main() {
	cfgPath := flag.String("config", "", "optional TOML scenario file")
	flag.Parse()

	sc, err := loadScenario(*cfgPath)
	if err != nil {
		logrus.Fatalf("load scenario: %v", err)
	}

	// The buffer stays caller-owned; every view below borrows it.
	nums := append([]int32(nil), sc.Numbers...)
	v := viewkit.Of(nums)

	logrus.Infof("buffer before increment: %v", nums)
	if err := viewkit.IncrementAll(v); err != nil {
		logrus.Fatalf("increment: %v", err)
	}
	color.Green("after increment: %v", nums)

	raw, err := viewkit.Reinterpret[byte](v)
	if err != nil {
		logrus.Fatalf("reinterpret: %v", err)
	}
	logrus.Infof("same buffer seen as %d bytes", raw.Len())
	if raw.Len() > 0 {
		// Write through the byte lens, read back through the int32 view.
		if err := raw.Set(0, 0xFF); err != nil {
			logrus.Fatalf("set through byte view: %v", err)
		}
		color.Green("after writing 0xFF through byte 0: %v", nums)
	}

	text := viewkit.Text(sc.Text)
	color.Cyan("letters or digits in %q: %d", sc.Text, text.CountLettersOrDigits())
	if r, ok := text.FirstUppercase(); ok {
		color.Cyan("first uppercase: %c", r)
	} else {
		color.Yellow("no uppercase character in %q", sc.Text)
	}
}
