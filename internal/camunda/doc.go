// Package camunda defines the Camunda 8 question catalogue.
//
// The catalogue is a wizard.Schema: a product selector followed by search
// database, per-product and Web Modeler steps, each gated by serializable
// conditions over earlier answers. Question ids are exported so the values
// generator and the answers file loader address the same keys.
//
// SharedSearch is the single definition of when Operate and Tasklist point
// at one search database. The wizard uses it to hide per-product database
// questions and the generator uses it to alias their fields.
package camunda
