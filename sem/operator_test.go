package sem_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"pegen/sem"
)

var _ = Describe("Opcode table", func() {
	DescribeTable("should render each operation",
		func(mnemonic, expected string) {
			op, ok := sem.LookupOperator(mnemonic)
			Expect(ok).To(BeTrue())
			Expect(op.Apply("x", "y")).To(Equal(expected))
		},
		Entry("add", "add", "x + y"),
		Entry("sub", "sub", "x - y"),
		Entry("mul", "mul", "x * y"),
		Entry("div", "div", "x / y"),
		Entry("and", "and", "x & y"),
		Entry("or", "or", "x | y"),
		Entry("xor", "xor", "x ^ y"),
		Entry("sll", "sll", "x << y"),
		Entry("sra", "sra", "$signed(x) >>> y"),
		Entry("lt", "lt", "x < y"),
		Entry("ge", "ge", "x >= y"),
	)

	It("should look up mnemonics case-insensitively", func() {
		op, ok := sem.LookupOperator("SRA")
		Expect(ok).To(BeTrue())
		Expect(op.Mnemonic).To(Equal("sra"))
		Expect(op.Signed).To(BeTrue())

		_, ok = sem.LookupOperator("Xor")
		Expect(ok).To(BeTrue())
	})

	It("should reject unknown mnemonics", func() {
		for _, mnemonic := range []string{"", "nop", "addi", "srl", " add"} {
			_, ok := sem.LookupOperator(mnemonic)
			Expect(ok).To(BeFalse(), mnemonic)
		}
	})

	It("should list every supported mnemonic", func() {
		mnemonics := sem.Mnemonics()
		Expect(mnemonics).To(Equal([]string{"add", "sub", "mul", "div", "and", "or", "xor", "sll", "sra", "lt", "ge"}))
		for _, mnemonic := range mnemonics {
			op, ok := sem.LookupOperator(mnemonic)
			Expect(ok).To(BeTrue())
			Expect(op.Mnemonic).To(Equal(mnemonic))
		}
	})

	It("should normalize mnemonics to lowercase", func() {
		Expect(sem.NormalizeMnemonic("ADD")).To(Equal("add"))
		Expect(sem.NormalizeMnemonic("nop")).To(Equal("nop"))
	})
})
