package config_test

import (
	"math/big"
	"time"

	"beevs/internal/config"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("NewAppConfig", func() {
	BeforeEach(func() {
		GinkgoT().Setenv("API_PORT", "8080")
		GinkgoT().Setenv("ETH_NODE_URL", "http://localhost:8545")
		GinkgoT().Setenv("DB_CONNECTION_URL", "postgres://beevs@localhost/beevs")
		GinkgoT().Setenv("JWT_SECRET", "secret")
		GinkgoT().Setenv("CONTRACT_ADDRESS", "0x5FbDB2315678afecb367f032d93F642f64180aa3")
		for _, key := range []string{"CHAIN_ID", "CONTRACT_ABI_PATH", "RELAYER_PRIVATE_KEY", "RECEIPT_TIMEOUT", "RECEIPT_POLL_INTERVAL", "RECONCILE_INTERVAL", "OPERATORS"} {
			GinkgoT().Setenv(key, "")
		}
	})

	It("should apply defaults for optional values", func() {
		cfg, err := config.NewAppConfig()
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Port).To(Equal("8080"))
		Expect(cfg.ChainID).To(BeNil())
		Expect(cfg.ContractABI).To(BeEmpty())
		Expect(cfg.ReceiptTimeout).To(Equal(120 * time.Second))
		Expect(cfg.PollInterval).To(Equal(2 * time.Second))
		Expect(cfg.ReconcileInterval).To(BeZero())
		Expect(cfg.Operators).To(BeEmpty())
	})

	It("should read optional values", func() {
		GinkgoT().Setenv("CHAIN_ID", "11155111")
		GinkgoT().Setenv("RECEIPT_TIMEOUT", "30s")
		GinkgoT().Setenv("RECONCILE_INTERVAL", "1m")
		GinkgoT().Setenv("OPERATORS", "alice:$2a$10$abc, bob:$2a$10$def")

		cfg, err := config.NewAppConfig()
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.ChainID).To(Equal(big.NewInt(11155111)))
		Expect(cfg.ReceiptTimeout).To(Equal(30 * time.Second))
		Expect(cfg.ReconcileInterval).To(Equal(time.Minute))
		Expect(cfg.Operators).To(Equal(map[string]string{"alice": "$2a$10$abc", "bob": "$2a$10$def"}))
	})

	It("should fail when a required value is missing", func() {
		GinkgoT().Setenv("CONTRACT_ADDRESS", "")

		_, err := config.NewAppConfig()
		Expect(err).To(MatchError(ContainSubstring("CONTRACT_ADDRESS")))
	})

	DescribeTable("malformed optional values",
		func(key, value string) {
			GinkgoT().Setenv(key, value)

			_, err := config.NewAppConfig()
			Expect(err).To(MatchError(ContainSubstring(key)))
		},
		Entry("chain id", "CHAIN_ID", "mainnet"),
		Entry("negative chain id", "CHAIN_ID", "-1"),
		Entry("timeout", "RECEIPT_TIMEOUT", "soon"),
		Entry("poll interval", "RECEIPT_POLL_INTERVAL", "0s"),
		Entry("operators", "OPERATORS", "alice"),
	)
})
