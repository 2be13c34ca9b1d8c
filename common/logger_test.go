package common_test

import (
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/goorgb/goorgb/common"
)

type recordingLogger struct {
	lines []string
}

func (l *recordingLogger) Debugf(format string, args ...interface{}) { l.record(format, args...) }
func (l *recordingLogger) Infof(format string, args ...interface{})  { l.record(format, args...) }
func (l *recordingLogger) Warnf(format string, args ...interface{})  { l.record(format, args...) }
func (l *recordingLogger) Errorf(format string, args ...interface{}) { l.record(format, args...) }

func (l *recordingLogger) record(format string, args ...interface{}) {
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}

var _ = Describe("Logger", func() {
	AfterEach(func() {
		common.SetLogger(new(common.StubLogger))
	})

	It("prefixes messages from the assigned logger", func() {
		rec := new(recordingLogger)
		common.SetLogger(rec)

		common.Log.Infof("connected in %dms", 5)

		Expect(rec.lines).To(ConsistOf(`[goorgb] connected in 5ms`))
	})

	It("logs nowhere by default", func() {
		Expect(func() {
			common.Log.Debugf(`no destination`)
		}).NotTo(Panic())
	})
})
