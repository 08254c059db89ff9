package jwt_test

import (
	"time"

	tokenIssuer "beevs/pkg/jwt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("JWTService", func() {
	var (
		service *tokenIssuer.JWTService
		info    tokenIssuer.TokenInfo
	)

	BeforeEach(func() {
		service = tokenIssuer.NewJWTService([]byte("secret"))
		info = tokenIssuer.TokenInfo{UserName: "operator", Subject: "operator", Expiration: time.Hour}
	})

	AfterEach(func() {
		tokenIssuer.TimeNow = time.Now
	})

	It("should validate the tokens it signs", func() {
		signed, err := service.Sign(service.Generate(info))
		Expect(err).NotTo(HaveOccurred())

		claims, err := service.Validate(signed)
		Expect(err).NotTo(HaveOccurred())
		Expect(claims).To(HaveKeyWithValue("username", "operator"))
		Expect(claims).To(HaveKeyWithValue("sub", "operator"))
	})

	It("should reject tokens signed with another secret", func() {
		signed, err := tokenIssuer.NewJWTService([]byte("other")).Sign(service.Generate(info))
		Expect(err).NotTo(HaveOccurred())

		_, err = service.Validate(signed)
		Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
	})

	It("should reject garbage", func() {
		_, err := service.Validate("not.a.token")
		Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
	})

	It("should report expired tokens", func() {
		signed, err := service.Sign(service.Generate(info))
		Expect(err).NotTo(HaveOccurred())

		tokenIssuer.TimeNow = func() time.Time { return time.Now().Add(2 * time.Hour) }

		_, err = service.Validate(signed)
		Expect(err).To(MatchError(tokenIssuer.ErrTokenExpired))
	})
})
