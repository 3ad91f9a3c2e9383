// SPDX-License-Identifier: MIT

package rpn

import (
	"context"
	"fmt"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/katalvlaran/lvnum/number"
)

var _ = Describe("Evaluator", func() {
	var (
		ctx  context.Context
		eval *Evaluator
	)

	BeforeEach(func() {
		ctx = context.Background()
		eval = New()
	})

	DescribeTable("evaluates expressions",
		func(expr, want string) {
			got, err := eval.Eval(ctx, expr)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.String()).To(Equal(want))
		},
		Entry("real addition", "1 2 +", "3"),
		Entry("mixed product", "1+2i 3 *", "3+6i"),
		Entry("i squared", "i i *", "-1"),
		Entry("root of a negative", "-4 sqrt", "2i"),
		Entry("polar then square", "2 90 polar 2 ^", "-4"),
		Entry("principal cube root", "-8 1 3 / ^", "1+1.732i"),
		Entry("division", "-5+10i 3+4i /", "1+2i"),
		Entry("subtraction to zero", "1+2i 1+2i -", "0"),
		Entry("division by zero", "1 0 /", "∞"),
		Entry("conjugate", "1+2i conj", "1-2i"),
		Entry("conjugate of a real", "7 conj", "7"),
		Entry("magnitude", "3+4i mag", "5"),
		Entry("argument", "-1 arg", "180"),
		Entry("imaginary part", "3-4i im", "-4"),
		Entry("real part", "3-4i re", "3"),
		Entry("component-wise abs", "-3-4i abs", "3+4i"),
		Entry("negate", "1-i neg", "-1+i"),
		Entry("inverse", "4 inv", "0.25"),
		Entry("max of reals", "3 -5 max", "3"),
		Entry("min by magnitude", "1+i 2 min", "1+i"),
		Entry("gcd", "12 18 gcd", "6"),
		Entry("gcd of non-whole", "12 0.5 gcd", "0.5"),
		Entry("log of e", "e log", "1"),
		Entry("euler", "i pi * exp", "-1"),
		Entry("pi", "pi", "3.142"),
		Entry("round", "2.5 round", "2.5"),
		Entry("smart", "0.33333333334 smart 3 *", "1"),
		Entry("noise removed", "0.1 0.2 +", "0.3"),
	)

	It("rounds the result to the configured accuracy", func() {
		got, err := New(WithAccuracy(2)).Eval(ctx, "2 3 /")
		Expect(err).NotTo(HaveOccurred())
		Expect(got).To(Equal(number.Number(number.Real(0.67))))

		got, err = New(WithAccuracy(0)).Eval(ctx, "2.5 round")
		Expect(err).NotTo(HaveOccurred())
		Expect(got).To(Equal(number.Number(number.Real(2))))
	})

	It("snaps the result when smart rounding is on", func() {
		plain, err := eval.Eval(ctx, "1 3 / 0.0000000001 +")
		Expect(err).NotTo(HaveOccurred())
		Expect(plain.Float64()).NotTo(Equal(1.0 / 3))

		snapped, err := New(WithSmartRound(true)).Eval(ctx, "1 3 / 0.0000000001 +")
		Expect(err).NotTo(HaveOccurred())
		Expect(snapped.Float64()).To(Equal(1.0 / 3))
	})

	Context("with invalid input", func() {
		DescribeTable("reports the matching sentinel",
			func(expr string, want error) {
				_, err := eval.Eval(ctx, expr)
				Expect(err).To(MatchError(want))
			},
			Entry("blank", "   ", ErrEmptyExpression),
			Entry("operator without operands", "+", ErrStackUnderflow),
			Entry("binary with one operand", "1 *", ErrStackUnderflow),
			Entry("two values left", "1 2", ErrLeftover),
			Entry("unknown word", "1 foo", ErrUnknownToken),
			Entry("textual infinity", "inf", ErrUnknownToken),
			Entry("complex exponent", "2 i ^", ErrNotReal),
			Entry("complex modulus", "1+i 45 polar", ErrNotReal),
		)

		It("names the token and its position", func() {
			_, err := eval.Eval(ctx, "1 foo +")
			Expect(err).To(MatchError(ContainSubstring(`token 2 "foo"`)))
		})

		It("stops on a cancelled context", func() {
			cancelled, cancel := context.WithCancel(ctx)
			cancel()
			_, err := eval.Eval(cancelled, "1 2 +")
			Expect(err).To(MatchError(context.Canceled))
		})
	})

	Context("with a logger", func() {
		var lines []string

		newLogger := func(verbosity int) logr.Logger {
			return funcr.New(func(prefix, args string) {
				lines = append(lines, fmt.Sprint(prefix, args))
			}, funcr.Options{Verbosity: verbosity})
		}

		BeforeEach(func() {
			lines = nil
		})

		It("traces every step at V(1)", func() {
			_, err := New(WithLogger(newLogger(1))).Eval(ctx, "1 2 +")
			Expect(err).NotTo(HaveOccurred())
			Expect(lines).To(HaveLen(4))
			Expect(lines[0]).To(ContainSubstring("push"))
			Expect(lines[2]).To(ContainSubstring("apply"))
			Expect(lines[3]).To(ContainSubstring("result"))
		})

		It("stays silent at V(0)", func() {
			_, err := New(WithLogger(newLogger(0))).Eval(ctx, "1 2 +")
			Expect(err).NotTo(HaveOccurred())
			Expect(lines).To(BeEmpty())
		})

		It("prefers the logger carried by the context", func() {
			withLog := logr.NewContext(ctx, newLogger(1))
			_, err := eval.Eval(withLog, "i")
			Expect(err).NotTo(HaveOccurred())
			Expect(lines).To(HaveLen(2))
		})
	})

	It("panics on an out of range accuracy", func() {
		Expect(func() { WithAccuracy(-1) }).To(Panic())
		Expect(func() { WithAccuracy(number.MaxAccuracy + 1) }).To(Panic())
	})

	It("lists every operator", func() {
		Expect(Operators()).To(ContainElements("+", "^", "polar", "gcd", "smart"))
		Expect(Operators()).To(HaveLen(len(operators)))
	})
})
