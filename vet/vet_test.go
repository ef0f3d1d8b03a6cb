// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package vet

import (
	"context"
	"time"

	"github.com/siemens/adbdig/types"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	. "github.com/onsi/gomega/gleak"
)

var _ = Describe("vetter", func() {

	BeforeEach(func() {
		goodgos := Goroutines()
		DeferCleanup(func() {
			Eventually(Goroutines).WithTimeout(3 * time.Second).WithPolling(250 * time.Millisecond).
				ShouldNot(HaveLeaked(goodgos))
		})
	})

	It("announces an address before passing its verdict", NodeTimeout(10*time.Second), func(ctx context.Context) {
		vetter, verdicts := New(2)
		vetter.Vet(ctx, "tcp:127.0.0.1:5555")
		Eventually(verdicts).WithContext(ctx).Should(Receive(
			HaveValue(And(
				HaveField("Address", "tcp:127.0.0.1:5555"),
				HaveField("Quality", types.Resolving),
			))))
		Eventually(verdicts).WithContext(ctx).Should(Receive(
			HaveValue(HaveField("Quality", types.Valid))))
		vetter.StopWait()
		Eventually(verdicts).Within(5 * time.Second).Should(BeClosed())
	})

	It("invalidates what the union rejects", NodeTimeout(10*time.Second), func(ctx context.Context) {
		vetter, verdicts := New(2)
		finals := map[string]types.Quality{}
		drained := make(chan struct{})
		go func() {
			defer GinkgoRecover()
			for qe := range verdicts {
				if qe.Qual().IsPending() {
					continue
				}
				finals[qe.Addr()] = qe.Qual()
				Expect(qe.Err()).To(HaveOccurred(), qe.Addr())
			}
			close(drained)
		}()
		for _, addr := range []string{
			"warp:9",
			"tcp:",
			"tcp:::1",
			"dev-raw:/dev/tty", // not a union member
		} {
			vetter.Vet(ctx, addr)
		}
		vetter.StopWait()
		Eventually(drained).WithContext(ctx).Should(BeClosed())
		Expect(finals).To(HaveLen(4))
		for addr, quality := range finals {
			Expect(quality).To(Equal(types.Invalid), addr)
		}
	})

	It("accepts dev-raw endpoints only when permitted", NodeTimeout(10*time.Second), func(ctx context.Context) {
		vetter, verdicts := New(2, PermitDevRaw())
		vetter.Vet(ctx, "dev-raw:/dev/tty")
		vetter.StopWait()
		var final types.Quality
		for qe := range verdicts {
			if !qe.Qual().IsPending() {
				final = qe.Qual()
			}
		}
		Expect(final).To(Equal(types.Valid))
	})

	It("rejects non-canonical spellings", NodeTimeout(10*time.Second), func(ctx context.Context) {
		vetter, verdicts := New(2)
		vetter.Vet(ctx, "tcp:[0::1]:5555") // canonically "tcp:[::1]:5555"
		vetter.StopWait()
		var errmsg string
		for qe := range verdicts {
			if qe.Qual() == types.Invalid {
				errmsg = qe.Err().Error()
			}
		}
		Expect(errmsg).To(ContainSubstring("not in canonical form"))
	})

	It("vets a stream of qualified endpoints, keeping attachments", NodeTimeout(10*time.Second), func(ctx context.Context) {
		vetter, verdicts := New(2)
		in := make(chan types.QualifiedEndpoint)
		done := make(chan struct{})
		go func() {
			defer GinkgoRecover()
			vetter.VetStream(ctx, in)
			vetter.StopWait()
			close(done)
		}()
		in <- &types.NamedEndpointValue{
			EndpointSpec: "vsock:1:2",
			QualifiedEndpointValue: types.QualifiedEndpointValue{
				Address: "vsock:1:2",
			},
		}
		close(in)
		Eventually(done).WithContext(ctx).Should(BeClosed())
		var finalSpec string
		for qe := range verdicts {
			ne, ok := qe.(types.NamedEndpoint)
			Expect(ok).To(BeTrue())
			if qe.Qual() == types.Valid {
				finalSpec = ne.Spec()
			}
		}
		Expect(finalSpec).To(Equal("vsock:1:2"))
	})

	It("stops vetting when the context gets cancelled", NodeTimeout(10*time.Second), func(ctx context.Context) {
		ctx, cancel := context.WithCancel(ctx)
		vetter, _ := New(1)
		cancel()
		// with the context already cancelled not even the initial notice
		// must block, despite nobody draining the verdict channel.
		for i := 0; i < 10; i++ {
			vetter.Vet(ctx, "jdwp:1234")
		}
		vetter.StopWait()
	})

})
