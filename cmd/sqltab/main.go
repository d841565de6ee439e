// Command sqltab is a batch spreadsheet processor: it reads a delimited
// text table, runs a sequence of selection and mutation commands
// against it, and writes the result back to the same file.
package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/vippsas/sqltab/internal/sqltaberr"
)

func main() {
	if err := Execute(); err != nil {
		logrus.StandardLogger().Error(err)
		os.Exit(int(sqltaberr.CodeOf(err)))
	}
}
