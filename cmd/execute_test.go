package cmd_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"pegen/cmd"
	"pegen/common"
)

const aluJSON = `{"PE": {
    "name": "ALU",
    "inputs": ["A", "B"],
    "outputs": ["R"],
    "fus": [{"name": "alu", "ops": ["add", "sub"]}],
    "connections": [
        {"from": "A", "to": "alu"},
        {"from": "B", "to": "alu"},
        {"from": "alu", "to": "R"}
    ]
}}`

var _ = Describe("Command line", func() {
	Describe("NormalizeArgs", func() {
		It("should turn a bare description path into a build", func() {
			Expect(cmd.NormalizeArgs([]string{"pegen", "alu.json"})).To(Equal(
				[]string{"pegen", "build", "alu.json"}))
		})

		It("should keep global options in front", func() {
			Expect(cmd.NormalizeArgs([]string{"pegen", "-ll", "silent", "alu.json"})).To(Equal(
				[]string{"pegen", "-ll", "silent", "build", "alu.json"}))
		})

		It("should leave subcommands alone", func() {
			for _, args := range [][]string{
				{"pegen", "build", "alu.json"},
				{"pegen", "-ll", "warn", "check", "alu.json"},
				{"pegen", "version"},
				{"pegen", "new", "build"},
				{"pegen"},
				{"pegen", "--help"},
			} {
				Expect(cmd.NormalizeArgs(args)).To(Equal(args))
			}
		})
	})

	Describe("ExecuteArgs", func() {
		var tempDir, workDir string

		BeforeEach(func() {
			var err error
			workDir, err = os.Getwd()
			Expect(err).NotTo(HaveOccurred())

			tempDir, err = os.MkdirTemp("", "pegen-cmd-*")
			Expect(err).NotTo(HaveOccurred())
			Expect(os.Chdir(tempDir)).To(Succeed())

			Expect(os.WriteFile("alu.json", []byte(aluJSON), 0644)).To(Succeed())
		})

		AfterEach(func() {
			Expect(os.Chdir(workDir)).To(Succeed())
			_ = os.RemoveAll(tempDir)
		})

		It("should generate a module into the working directory", func() {
			Expect(cmd.ExecuteArgs([]string{"pegen", "build", "alu.json"})).To(Equal(0))

			text, err := os.ReadFile(filepath.Join(tempDir, "ALU.v"))
			Expect(err).NotTo(HaveOccurred())
			Expect(string(text)).To(HavePrefix("module ALU(\n"))
		})

		It("should accept the shorthand form", func() {
			Expect(cmd.ExecuteArgs([]string{"pegen", "alu.json"})).To(Equal(0))

			_, err := os.Stat(filepath.Join(tempDir, "ALU.v"))
			Expect(err).NotTo(HaveOccurred())
		})

		It("should check without writing", func() {
			Expect(cmd.ExecuteArgs([]string{"pegen", "check", "alu.json"})).To(Equal(0))

			_, err := os.Stat(filepath.Join(tempDir, "ALU.v"))
			Expect(os.IsNotExist(err)).To(BeTrue())
		})

		It("should fail on a missing description", func() {
			Expect(cmd.ExecuteArgs([]string{"pegen", "build", "missing.json"})).To(Equal(1))
		})

		It("should create descriptions and project files", func() {
			Expect(cmd.ExecuteArgs([]string{"pegen", "new", "Unit"})).To(Equal(0))
			_, err := os.Stat(filepath.Join(tempDir, "Unit.json"))
			Expect(err).NotTo(HaveOccurred())

			Expect(cmd.ExecuteArgs([]string{"pegen", "init"})).To(Equal(0))
			_, err = os.Stat(filepath.Join(tempDir, common.ConfigFileName))
			Expect(err).NotTo(HaveOccurred())

			Expect(cmd.ExecuteArgs([]string{"pegen", "init"})).To(Equal(1))
		})

		It("should print the version", func() {
			Expect(cmd.ExecuteArgs([]string{"pegen", "version"})).To(Equal(0))
		})
	})
})
