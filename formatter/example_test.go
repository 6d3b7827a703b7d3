package formatter_test

import (
	"fmt"
	"time"

	"github.com/philipp01105/levellog/core"
	"github.com/philipp01105/levellog/formatter"
)

func ExampleSubstitute() {
	args := formatter.Substitute([]interface{}{"disk {} at {}%", "sda", 91, "extra"})
	fmt.Println(args...)
	// Output:
	// disk sda at 91% extra
}

func ExamplePrefix() {
	at := time.Date(2026, 1, 15, 12, 0, 0, 250*int(time.Millisecond), time.Local)

	fmt.Println(formatter.Prefix(core.ErrorLevel, "db", false, at))
	fmt.Println(formatter.Prefix(core.ErrorLevel, "db", true, at))
	// Output:
	// [ERROR] (db)
	// [ERROR] 12:00:00:250 (db)
}

func ExampleNewTextFormatter() {
	f := formatter.NewTextFormatter(formatter.Config{})

	rec := core.NewRecord(time.Now(), core.InfoLevel, "api", "[INFO] (api)", []interface{}{"request handled", 200})

	out, _ := f.Format(rec)
	fmt.Print(string(out))
	// Output:
	// [INFO] (api) request handled 200
}
