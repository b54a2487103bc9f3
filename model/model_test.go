package model_test

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"pegen/model"
)

var _ = Describe("Model", func() {
	Describe("IsValidIdentifier", func() {
		It("should accept Verilog simple identifiers", func() {
			for _, name := range []string{"a", "A", "_x", "alu_0", "Mux12", strings.Repeat("n", model.MaxNameLength)} {
				Expect(model.IsValidIdentifier(name)).To(BeTrue(), name)
			}
		})

		It("should reject everything else", func() {
			for _, name := range []string{"", "0a", "a-b", "a b", "$x", "a.b", strings.Repeat("n", model.MaxNameLength+1)} {
				Expect(model.IsValidIdentifier(name)).To(BeFalse(), name)
			}
		})

		DescribeTable("should reject Verilog keywords",
			func(name string, valid bool) {
				Expect(model.IsReservedWord(name)).To(Equal(!valid))
				Expect(model.IsValidIdentifier(name)).To(Equal(valid))
			},
			Entry("module", "module", false),
			Entry("endmodule", "endmodule", false),
			Entry("wire", "wire", false),
			Entry("reg", "reg", false),
			Entry("input", "input", false),
			Entry("output", "output", false),
			Entry("always", "always", false),
			Entry("posedge", "posedge", false),
			Entry("operator keyword", "xor", false),
			Entry("keyword in another case", "Module", true),
			Entry("keyword prefix", "wire0", true),
			Entry("keyword suffix", "my_reg", true),
		)
	})

	Describe("New", func() {
		var pe *model.PE

		BeforeEach(func() {
			pe = &model.PE{
				Name:      "PE",
				Inputs:    []string{"a", "b"},
				Outputs:   []string{"y"},
				Muxes:     []string{"m"},
				Registers: []string{"r"},
				FUs:       []model.FunctionalUnit{{Name: "f", Ops: []string{"add"}}},
				Connections: []model.Connection{
					{From: "ghost", To: "nowhere"},
				},
			}
		})

		It("should accept unique valid names and unresolved connections", func() {
			checked, err := model.New(pe)
			Expect(err).NotTo(HaveOccurred())
			Expect(checked).To(BeIdenticalTo(pe))
		})

		It("should reject an invalid PE name", func() {
			pe.Name = "9lives"
			_, err := model.New(pe)

			var ne *model.NameError
			Expect(err).To(BeAssignableToTypeOf(ne))
			ne = err.(*model.NameError)
			Expect(ne.PEName).To(BeTrue())
			Expect(err.Error()).To(Equal("invalid PE name `9lives`"))
		})

		It("should reject keywords as names", func() {
			pe.Name = "module"
			_, err := model.New(pe)
			Expect(err).To(HaveOccurred())
			Expect(err.(*model.NameError).Reserved).To(BeTrue())
			Expect(err.Error()).To(Equal("PE name `module` is a reserved word"))

			pe.Name = "PE"
			pe.Registers = []string{"reg"}
			_, err = model.New(pe)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(Equal("register name `reg` is a reserved word"))
		})

		It("should reject an invalid component name", func() {
			pe.FUs[0].Name = "f-1"
			_, err := model.New(pe)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(Equal("invalid functional unit name `f-1`"))
		})

		It("should reject a name declared twice in one namespace", func() {
			pe.Inputs = append(pe.Inputs, "a")
			_, err := model.New(pe)
			Expect(err).To(HaveOccurred())
			Expect(err.(*model.NameError).Duplicate).To(BeTrue())
			Expect(err.Error()).To(Equal("input `a` declared more than once"))
		})

		It("should reject a name shared across namespaces", func() {
			pe.Registers = []string{"m"}
			_, err := model.New(pe)
			Expect(err).To(HaveOccurred())

			ne := err.(*model.NameError)
			Expect(ne.Namespace).To(Equal(model.NSRegister))
			Expect(ne.Previous).To(Equal(model.NSMux))
			Expect(err.Error()).To(Equal("register `m` conflicts with mux of the same name"))
		})
	})

	Describe("Components", func() {
		It("should visit every component in port-list order", func() {
			pe := &model.PE{
				Inputs:    []string{"i"},
				Outputs:   []string{"o"},
				Muxes:     []string{"m"},
				Registers: []string{"r"},
				FUs:       []model.FunctionalUnit{{Name: "f"}},
			}

			var visited []string
			pe.Components(func(name string, ns model.Namespace) bool {
				visited = append(visited, ns.String()+":"+name)
				return true
			})

			Expect(visited).To(Equal([]string{
				"input:i", "mux:m", "functional unit:f", "register:r", "output:o",
			}))
		})

		It("should stop when asked to", func() {
			pe := &model.PE{Inputs: []string{"a", "b", "c"}}

			count := 0
			pe.Components(func(string, model.Namespace) bool {
				count++
				return count < 2
			})

			Expect(count).To(Equal(2))
		})
	})

	It("should only let inputs be driven from outside", func() {
		Expect(model.NSInput.IsSink()).To(BeFalse())
		for _, ns := range []model.Namespace{model.NSMux, model.NSFunctionalUnit, model.NSRegister, model.NSOutput} {
			Expect(ns.IsSink()).To(BeTrue())
		}
	})
})
