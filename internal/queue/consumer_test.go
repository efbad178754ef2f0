package queue_test

import (
	"github.com/redis/go-redis/v9"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"givebase.app/crm/internal/queue"
)

var _ = Describe("ParseMessage", func() {
	It("parses a completeness recheck task", func() {
		msg, err := queue.ParseMessage(redis.XMessage{
			ID: "1-0",
			Values: map[string]any{
				"task_type":       "completeness_recheck",
				"organization_id": "1849203948000",
				"reason":          queue.ReasonPaymentAccountUpdated,
				"attempt":         "2",
				"trace_id":        "abc",
			},
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(msg.ID).To(Equal("1-0"))
		Expect(msg.TaskType).To(Equal(queue.TaskTypeCompletenessRecheck))
		Expect(msg.OrganizationID).To(Equal(int64(1849203948000)))
		Expect(msg.Reason).To(Equal(queue.ReasonPaymentAccountUpdated))
		Expect(msg.Attempt).To(Equal(2))
		Expect(msg.TraceID).To(Equal("abc"))
	})

	It("defaults the attempt to one", func() {
		msg, err := queue.ParseMessage(redis.XMessage{
			ID:     "2-0",
			Values: map[string]any{"task_type": "completeness_recheck", "organization_id": "7"},
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(msg.Attempt).To(Equal(1))
	})

	DescribeTable("rejects malformed messages",
		func(values map[string]any, substr string) {
			_, err := queue.ParseMessage(redis.XMessage{ID: "3-0", Values: values})
			Expect(err).To(MatchError(ContainSubstring(substr)))
		},
		Entry("missing task type", map[string]any{"organization_id": "7"}, "missing task_type"),
		Entry("unknown task type", map[string]any{"task_type": "issue_event"}, "unknown task_type"),
		Entry("missing organization", map[string]any{"task_type": "completeness_recheck"}, "missing organization_id"),
		Entry("non-numeric organization", map[string]any{"task_type": "completeness_recheck", "organization_id": "acme"}, "parsing organization_id"),
		Entry("zero organization", map[string]any{"task_type": "completeness_recheck", "organization_id": "0"}, "invalid organization_id"),
		Entry("bad attempt", map[string]any{"task_type": "completeness_recheck", "organization_id": "7", "attempt": "x"}, "parsing attempt"),
	)
})
