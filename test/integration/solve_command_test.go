package integration_test

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"
	"github.com/onsi/gomega/gexec"
)

const distanceProblem = `distance_matrix:
  - [0, 2, 1]
  - [40, 0, 30]
  - [600, 500, 0]
`

const spanProblem = `distance_matrix:
  - [0, 1, 2]
  - [1, 0, 3]
  - [2, 3, 0]
duration_matrix:
  - [0, 3600, 7200]
  - [3600, 0, 10800]
  - [7200, 10800, 0]
job_durations: [10800, 10800, 10800]
time_windows:
  - [{start: 1609480800, end: 1609502400}, {start: 1609567200, end: 1609588800}]
  - [{start: 1609480800, end: 1609502400}, {start: 1609567200, end: 1609588800}]
  - [{start: 1609480800, end: 1609502400}, {start: 1609567200, end: 1609588800}]
operation_times: {start: 28800, end: 57600}
`

func writeProblem(content string) string {
	dir, err := os.MkdirTemp("", "tourkit-integration")
	Expect(err).NotTo(HaveOccurred())
	DeferCleanup(func() { _ = os.RemoveAll(dir) })

	path := filepath.Join(dir, "problem.yaml")
	Expect(os.WriteFile(path, []byte(content), 0644)).To(Succeed())
	return path
}

var _ = Describe("Solve Command", func() {

	Describe("Distance-only problems", func() {
		Context("when user solves a small instance", func() {
			It("should print the best tour and its distance", func() {
				path := writeProblem(distanceProblem)
				command := exec.Command(pathToCLI, "solve", "-f", path)
				session, err := gexec.Start(command, GinkgoWriter, GinkgoWriter)
				Expect(err).NotTo(HaveOccurred())

				Eventually(session).Should(gexec.Exit(0))
				Expect(session.Out).To(gbytes.Say("Solved 3 locations"))
				Expect(session.Out).To(gbytes.Say("Sequence: 1 -> 0 -> 2"))
				Expect(session.Out).To(gbytes.Say("Distance: 541"))
			})

			It("should emit valid JSON with --json", func() {
				path := writeProblem(distanceProblem)
				command := exec.Command(pathToCLI, "solve", "-f", path, "--json")
				session, err := gexec.Start(command, GinkgoWriter, GinkgoWriter)
				Expect(err).NotTo(HaveOccurred())

				Eventually(session).Should(gexec.Exit(0))
				var result map[string]interface{}
				Expect(json.Unmarshal(session.Out.Contents(), &result)).To(Succeed())
				Expect(result).To(HaveKey("sequence"))
				Expect(result["distance"]).To(BeEquivalentTo(541))
			})
		})
	})

	Describe("Time-aware problems", func() {
		Context("when the problem carries windows and operating hours", func() {
			It("should print schedule totals", func() {
				path := writeProblem(spanProblem)
				command := exec.Command(pathToCLI, "solve", "-f", path)
				session, err := gexec.Start(command, GinkgoWriter, GinkgoWriter)
				Expect(err).NotTo(HaveOccurred())

				Eventually(session).Should(gexec.Exit(0))
				Expect(session.Out).To(gbytes.Say("Schedule"))
				Expect(session.Out).To(gbytes.Say("splits:"))
			})

			It("should print the event timeline with --schedule", func() {
				path := writeProblem(spanProblem)
				command := exec.Command(pathToCLI, "solve", "-f", path, "--schedule")
				session, err := gexec.Start(command, GinkgoWriter, GinkgoWriter)
				Expect(err).NotTo(HaveOccurred())

				Eventually(session).Should(gexec.Exit(0))
				Expect(session.Out).To(gbytes.Say("TYPE"))
				Expect(session.Out).To(gbytes.Say("work"))
			})
		})
	})

	Describe("Error handling", func() {
		Context("when inputs are invalid", func() {
			It("should exit non-zero on a missing file", func() {
				command := exec.Command(pathToCLI, "solve", "-f", "/does/not/exist.yaml")
				session, err := gexec.Start(command, GinkgoWriter, GinkgoWriter)
				Expect(err).NotTo(HaveOccurred())

				Eventually(session).Should(gexec.Exit(1))
			})

			It("should exit non-zero on a ragged matrix", func() {
				path := writeProblem("distance_matrix:\n  - [0, 1]\n  - [1]\n")
				command := exec.Command(pathToCLI, "solve", "-f", path)
				session, err := gexec.Start(command, GinkgoWriter, GinkgoWriter)
				Expect(err).NotTo(HaveOccurred())

				Eventually(session).Should(gexec.Exit(1))
				Eventually(session.Err).Should(gbytes.Say("shape error"))
			})
		})
	})
})

var _ = Describe("Version Command", func() {
	It("should print the version", func() {
		command := exec.Command(pathToCLI, "version")
		session, err := gexec.Start(command, GinkgoWriter, GinkgoWriter)
		Expect(err).NotTo(HaveOccurred())

		Eventually(session).Should(gexec.Exit(0))
		Expect(session.Out).To(gbytes.Say("tourkit"))
	})
})
