package config_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"pegen/common"
	"pegen/config"
	"pegen/logging"
)

var _ = Describe("Config", func() {
	var tempDir string

	writeProject := func(text string) {
		Expect(os.WriteFile(filepath.Join(tempDir, common.ConfigFileName), []byte(text), 0644)).To(Succeed())
	}

	BeforeEach(func() {
		var err error
		tempDir, err = os.MkdirTemp("", "pegen-config-*")
		Expect(err).NotTo(HaveOccurred())

		logging.Initialize("silent")
	})

	AfterEach(func() {
		_ = os.RemoveAll(tempDir)
	})

	It("should use the defaults without a project file", func() {
		conf, err := config.LoadConfig(tempDir)
		Expect(err).NotTo(HaveOccurred())
		Expect(conf).To(Equal(config.Default(tempDir)))
		Expect(conf.Name).To(Equal(filepath.Base(tempDir)))
		Expect(conf.OutputDir).To(BeEmpty())
		Expect(conf.Extension).To(Equal("v"))
		Expect(conf.Strict).To(BeFalse())
	})

	It("should read the project file", func() {
		writeProject(`[project]
name = "cgra"
pegen-version = "` + common.PegenVersion + `"
output-dir = "rtl"
extension = "sv"
strict = true
`)

		conf, err := config.LoadConfig(tempDir)
		Expect(err).NotTo(HaveOccurred())
		Expect(conf.Name).To(Equal("cgra"))
		Expect(conf.OutputDir).To(Equal(filepath.Join(tempDir, "rtl")))
		Expect(conf.Extension).To(Equal("sv"))
		Expect(conf.Strict).To(BeTrue())
		Expect(logging.WarningCount()).To(Equal(0))
	})

	It("should keep absolute output directories", func() {
		outDir := filepath.Join(tempDir, "abs")
		writeProject("[project]\nname = \"cgra\"\npegen-version = \"" + common.PegenVersion + "\"\noutput-dir = \"" + filepath.ToSlash(outDir) + "\"\n")

		conf, err := config.LoadConfig(tempDir)
		Expect(err).NotTo(HaveOccurred())
		Expect(conf.OutputDir).To(Equal(outDir))
	})

	It("should warn about a version mismatch", func() {
		writeProject("[project]\nname = \"cgra\"\npegen-version = \"0.0.1\"\n")

		_, err := config.LoadConfig(tempDir)
		Expect(err).NotTo(HaveOccurred())
		Expect(logging.WarningCount()).To(Equal(1))
	})

	DescribeTable("should reject invalid project files",
		func(text, message string) {
			writeProject(text)
			_, err := config.LoadConfig(tempDir)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring(message))
		},
		Entry("malformed", "[project\n", "error parsing"),
		Entry("no project table", "[other]\nname = \"x\"\n", "missing [project] table"),
		Entry("no name", "[project]\nstrict = true\n", "missing project name"),
		Entry("bad extension", "[project]\nname = \"x\"\nextension = \".v\"\n", "invalid output extension"),
	)

	Describe("InitConfig", func() {
		It("should write a project file that loads", func() {
			path, err := config.InitConfig("cgra", tempDir)
			Expect(err).NotTo(HaveOccurred())
			Expect(path).To(Equal(filepath.Join(tempDir, common.ConfigFileName)))

			conf, err := config.LoadConfig(tempDir)
			Expect(err).NotTo(HaveOccurred())
			Expect(conf.Name).To(Equal("cgra"))
			Expect(conf.Extension).To(Equal(common.DefaultExtension))
			Expect(conf.Strict).To(BeFalse())
			Expect(logging.WarningCount()).To(Equal(0))
		})

		It("should not overwrite an existing project file", func() {
			_, err := config.InitConfig("cgra", tempDir)
			Expect(err).NotTo(HaveOccurred())

			_, err = config.InitConfig("cgra", tempDir)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("already exists"))
		})

		It("should derive valid project names from directories", func() {
			Expect(config.ProjectName("/work/my-project")).To(Equal("my_project"))
			Expect(config.ProjectName("/work/2024.pe")).To(Equal("_2024_pe"))
			Expect(config.ProjectName("/work/cgra")).To(Equal("cgra"))
		})

		It("should not derive a Verilog keyword as a project name", func() {
			Expect(config.ProjectName("/work/module")).To(Equal("module_"))
			Expect(config.ProjectName("/work/wire")).To(Equal("wire_"))
			Expect(config.ProjectName("/work/Module")).To(Equal("Module"))

			_, err := config.InitConfig(config.ProjectName("/work/module"), tempDir)
			Expect(err).NotTo(HaveOccurred())
		})

		It("should reject an invalid project name", func() {
			_, err := config.InitConfig("my project", tempDir)
			Expect(err).To(HaveOccurred())

			_, err = config.InitConfig("module", tempDir)
			Expect(err).To(HaveOccurred())

			_, err = os.Stat(filepath.Join(tempDir, common.ConfigFileName))
			Expect(os.IsNotExist(err)).To(BeTrue())
		})

		It("should not leave a partial project file behind", func() {
			restore := config.BreakProjectEncoding()
			defer restore()

			path, err := config.InitConfig("cgra", tempDir)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("error encoding TOML: encoder failure"))
			Expect(path).To(BeEmpty())

			_, err = os.Stat(filepath.Join(tempDir, common.ConfigFileName))
			Expect(os.IsNotExist(err)).To(BeTrue())

			restore()
			_, err = config.InitConfig("cgra", tempDir)
			Expect(err).NotTo(HaveOccurred())
		})
	})
})
