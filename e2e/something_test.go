package e2e_test

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"
)

var _ = Describe("Something E2E Tests", func() {
	Describe("Combining lines", func() {
		It("should combine two lines without a separator", func() {
			session := runBinary("hello\nworld\n")

			Expect(session.ExitCode()).To(Equal(0))
			Expect(session.Out).To(gbytes.Say(`Enter something: "hello" is certainly something\n`))
			Expect(session.Out).To(gbytes.Say(`Now enter something that is nothing i have seen before: "world" is probably something new\n`))
			Expect(session.Out).To(gbytes.Say(`We now have two old things: "hello" and the newer: "world"\. Watch what happens when we combine them\.\n`))
			Expect(session.Out).To(gbytes.Say(`We will produce something truly new\n`))
			Expect(session.Out).To(gbytes.Say(`The newest string that may or may not be something: "helloworld"\n`))
			Expect(session.Out).To(gbytes.Say(`However, we produced something new that may or may not exist, from two definite existent strings\n`))
			Expect(session.Err.Contents()).To(BeEmpty())
		})

		It("should still prompt for the second line after an empty first line", func() {
			session := runBinary("\nworld\n")

			Expect(session.ExitCode()).To(Equal(0))
			Expect(session.Out).To(gbytes.Say(`Enter something: "" is certainly something\n`))
			Expect(session.Out).To(gbytes.Say(`Now enter something that is nothing i have seen before: "world"`))
			Expect(session.Out).To(gbytes.Say(`may or may not be something: "world"\n`))
		})

		It("should truncate a line at the maximum length", func() {
			long := strings.Repeat("z", 1000)
			session := runBinary(long + "\n")

			Expect(session.ExitCode()).To(Equal(0))
			Expect(string(session.Out.Contents())).To(ContainSubstring(`"` + strings.Repeat("z", 999) + `" is certainly something`))
			Expect(string(session.Out.Contents())).To(ContainSubstring(`"z" is probably something new`))
		})

		It("should shorten the combination of two long lines to one line's length", func() {
			session := runBinary(strings.Repeat("a", 600) + "\n" + strings.Repeat("b", 600) + "\n")

			Expect(session.ExitCode()).To(Equal(0))
			Expect(string(session.Out.Contents())).To(ContainSubstring(
				`may or may not be something: "` + strings.Repeat("a", 600) + strings.Repeat("b", 399) + `"` + "\n"))
		})

		It("should succeed on closed input", func() {
			session := runBinary("")

			Expect(session.ExitCode()).To(Equal(0))
			Expect(session.Out).To(gbytes.Say(`may or may not be something: ""\n`))
		})
	})

	Describe("Allocation failures", func() {
		It("should exit before any prompt when the first allocation fails", func() {
			session := runBinary("hello\nworld\n", "--fail-allocation", "1")

			Expect(session.ExitCode()).To(Equal(3))
			Expect(string(session.Out.Contents())).To(Equal("There is something that is no thing so therefore something is nothing\n"))
		})

		It("should stop after the first line when the second allocation fails", func() {
			session := runBinary("hello\nworld\n", "--fail-allocation", "2")

			Expect(session.ExitCode()).To(Equal(3))
			Expect(string(session.Out.Contents())).To(Equal(
				"Enter something: \"hello\" is certainly something\n" +
					"Something new cannot possibly be nothing, unless the original something was nothing\n"))
		})

		It("should report the score in the logs", func() {
			session := runBinary("hello\nworld\n", "--fail-allocation", "3", "--log-level", "info")

			Expect(session.ExitCode()).To(Equal(3))
			Expect(session.Out).To(gbytes.Say(`Cannot create a string from nothing\n`))
			Expect(session.Err).To(gbytes.Say(`score=1`))
		})
	})

	Describe("Configuration", func() {
		It("should exit with 1 on bad flags", func() {
			session := runBinary("", "--max-size", "0")

			Expect(session.ExitCode()).To(Equal(1))
			Expect(session.Err).To(gbytes.Say(`max size must be positive`))
		})
	})
})
