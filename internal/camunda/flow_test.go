package camunda_test

import (
	"bytes"

	"github.com/go-logr/logr/funcr"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/imamik/c8values/internal/camunda"
	"github.com/imamik/c8values/internal/values"
	"github.com/imamik/c8values/internal/wizard"
)

func titles(s *wizard.Session) []string {
	out := make([]string, 0, s.Total())
	for _, step := range s.Steps() {
		out = append(out, step.Title)
	}
	return out
}

func advanceToEnd(s *wizard.Session) {
	for s.Advance() {
	}
}

var _ = Describe("Camunda wizard session", func() {
	var (
		session *wizard.Session
		logs    *bytes.Buffer
	)

	BeforeEach(func() {
		logs = &bytes.Buffer{}
		log := funcr.New(func(_, args string) {
			logs.WriteString(args + "\n")
		}, funcr.Options{Verbosity: 1})

		session = wizard.NewSession(camunda.Schema(),
			wizard.WithGenerator(values.Generate),
			wizard.WithLogger(log),
		)
	})

	It("starts on the product step with nothing generated", func() {
		Expect(session.Position()).To(Equal(1))
		Expect(titles(session)).To(Equal([]string{"Products"}))
		_, generated := session.Output()
		Expect(generated).To(BeFalse())
	})

	It("returns the placeholder when generating without answers", func() {
		Expect(session.Generate()).To(Equal(values.Placeholder))
		out, generated := session.Output()
		Expect(generated).To(BeTrue())
		Expect(out).To(Equal(values.Placeholder))
	})

	Describe("changing the product selection", func() {
		BeforeEach(func() {
			session.SaveAnswer(camunda.QProducts, wizard.Choices{camunda.Zeebe, camunda.Identity, camunda.Connectors})
			advanceToEnd(session)
			Expect(session.Position()).To(Equal(4))
		})

		It("resets the position to the first step", func() {
			session.SaveAnswer(camunda.QProducts, wizard.Choices{camunda.Zeebe, camunda.Identity})
			Expect(session.Position()).To(Equal(1))
			Expect(logs.String()).To(ContainSubstring("selector changed"))
		})

		It("resets even when the selection grows", func() {
			session.SaveAnswer(camunda.QProducts, wizard.Choices{camunda.Zeebe, camunda.Identity, camunda.Connectors, camunda.WebModeler})
			Expect(session.Position()).To(Equal(1))
			Expect(session.Total()).To(Equal(6))
		})
	})

	Describe("answers that shrink the step list", func() {
		It("clamps to the new last step", func() {
			session.SaveAnswer(camunda.QProducts, wizard.Choices{camunda.Operate, camunda.Tasklist})
			session.SaveAnswer(camunda.QSearchDatabase, wizard.Text(camunda.Elasticsearch))
			session.SaveAnswer(camunda.QShareSearchDatabase, wizard.Text(camunda.Yes))
			Expect(titles(session)).To(Equal([]string{"Products", "Search Database", "Shared Elasticsearch", "Operate", "Tasklist"}))

			advanceToEnd(session)
			Expect(session.Position()).To(Equal(5))

			session.SaveAnswer(camunda.QShareSearchDatabase, wizard.Text(camunda.No))

			Expect(session.Total()).To(Equal(4))
			Expect(session.Position()).To(Equal(4))
			step, ok := session.Current()
			Expect(ok).To(BeTrue())
			Expect(step.Title).To(Equal("Tasklist"))
			Expect(session.CanAdvance()).To(BeFalse())
		})
	})

	Describe("hidden answers", func() {
		It("survive switching the discriminator back and forth", func() {
			session.SaveAnswer(camunda.QProducts, wizard.Choices{camunda.WebModeler})
			session.SaveAnswer(camunda.QWebModelerDatabase, wizard.Text(camunda.PostgreSQL))
			session.SaveAnswer(camunda.QWebModelerDBURL, wizard.Text("db.example.com"))

			session.SaveAnswer(camunda.QWebModelerDatabase, wizard.Text(camunda.Oracle))
			Expect(session.Generate()).To(Equal(values.Placeholder))
			Expect(session.Answers().Text(camunda.QWebModelerDBURL)).To(Equal("db.example.com"))

			session.SaveAnswer(camunda.QWebModelerDatabase, wizard.Text(camunda.PostgreSQL))
			Expect(session.Generate()).To(ContainSubstring("jdbc:postgresql://db.example.com:5432/web-modeler"))
		})
	})

	Describe("generating", func() {
		It("renders the Web Modeler database", func() {
			session.SaveAnswer(camunda.QProducts, wizard.Choices{camunda.WebModeler})
			session.SaveAnswer(camunda.QWebModelerDatabase, wizard.Text(camunda.PostgreSQL))
			session.SaveAnswer(camunda.QWebModelerDBURL, wizard.Text("db.example.com"))
			session.SaveAnswer(camunda.QWebModelerDBHost, wizard.Text("db.example.com"))
			session.SaveAnswer(camunda.QWebModelerDBUser, wizard.Text("wm"))
			session.SaveAnswer(camunda.QWebModelerDBPassword, wizard.Text("pw"))

			out := session.Generate()
			Expect(out).To(ContainSubstring("url: jdbc:postgresql://db.example.com:5432/web-modeler"))
			Expect(out).To(ContainSubstring("port: 5432"))
			Expect(out).To(ContainSubstring("database: web-modeler"))
		})

		It("is byte-identical across calls", func() {
			session.SaveAnswer(camunda.QProducts, wizard.Choices{camunda.Zeebe})
			session.FieldList(camunda.QZeebeEnv).Add("ZEEBE_LOG_LEVEL", "debug")

			Expect(session.Generate()).To(Equal(session.Generate()))
		})

		It("generates from any position", func() {
			session.SaveAnswer(camunda.QProducts, wizard.Choices{camunda.Zeebe})
			session.FieldList(camunda.QZeebeEnv).Add("A", "1")
			Expect(session.Position()).To(Equal(1))
			Expect(session.Generate()).To(HavePrefix("zeebe:\n  env:\n"))
		})

		It("emits the placeholder for a shared database answered only per product", func() {
			session.SaveAnswer(camunda.QProducts, wizard.Choices{camunda.Operate, camunda.Tasklist})
			session.SaveAnswer(camunda.QSearchDatabase, wizard.Text(camunda.Elasticsearch))
			session.SaveAnswer(camunda.QShareSearchDatabase, wizard.Text(camunda.No))
			session.SaveAnswer(camunda.QOperateDBURL, wizard.Text("http://operate:9200"))
			session.SaveAnswer(camunda.QTasklistDBURL, wizard.Text("http://tasklist:9200"))
			session.SaveAnswer(camunda.QShareSearchDatabase, wizard.Text(camunda.Yes))

			Expect(session.Generate()).To(Equal(values.Placeholder))
		})
	})

	Describe("environment lists", func() {
		It("returns to the original list after add, edit and remove", func() {
			session.SaveAnswer(camunda.QProducts, wizard.Choices{camunda.Operate})
			editor := session.FieldList(camunda.QOperateEnv)
			Expect(editor.Add("A", "1")).To(BeTrue())
			before := editor.Entries()

			Expect(editor.Add("B", "2")).To(BeTrue())
			Expect(editor.StartEdit(1)).To(BeTrue())
			editor.SetDraft("B", "3")
			Expect(editor.CommitEdit()).To(BeTrue())
			Expect(editor.Remove(1)).To(BeTrue())

			Expect(editor.Entries()).To(Equal(before))
			Expect(session.Answers().Fields(camunda.QOperateEnv)).To(HaveLen(1))
		})
	})
})
