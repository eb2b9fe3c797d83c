// Package vocabulary parses tabular vocabulary sources into raw class
// records ready for schema merging.
//
// A vocabulary source is a CSV file with a header row and one row per
// (class, property) pair:
//
//	class_id,parent_id,property_name,property_kind,required
//	Dataset,Catalog,title,string,true
//	Dataset,Catalog,distribution,ref(Distribution)*,false
//	Agent,,,,
//
// A class with no properties registers its existence with a single row
// whose property_name is empty. Repeating a class_id with a different
// parent_id unions the parents, so a class may be allowed under several
// containers. Two optional columns, node_kind and node_id, carry OPC UA
// node metadata when the source describes an object-type hierarchy.
//
// Property kinds follow a small grammar: string, number, date, or
// ref(Target), each with an optional '*' suffix for multiple cardinality.
// A bare ref target names a class of the same source; a prefixed target
// (ref(dcat:Dataset)) names a class of another vocabulary. Targets are
// resolved later during schema merging, so forward references are legal.
//
// Parsing is pure: a Source is a value and the loader never touches
// shared state. All parse failures wrap ErrMalformedVocabulary with the
// source name and row number.
package vocabulary
