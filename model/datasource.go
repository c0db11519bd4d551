package model

import "strings"

// DataSource represents a database an Xref points into, the value is the full database name
type DataSource string

func (d DataSource) String() string { return string(d) }

func (d DataSource) Equal(other Value) bool {
	o, ok := other.(DataSource)
	return ok && o == d
}

func (DataSource) value() {}

// Code returns system code of a known data source or empty string
func (d DataSource) Code() string {
	if info, ok := dataSourceByName[strings.ToLower(string(d))]; ok {
		return info.code
	}
	return ""
}

type dataSourceInfo struct {
	name string
	code string
}

var dataSourceList = []dataSourceInfo{
	{name: "Entrez Gene", code: "L"},
	{name: "Ensembl", code: "En"},
	{name: "UniProt/TrEMBL", code: "S"},
	{name: "RefSeq", code: "Q"},
	{name: "HGNC", code: "H"},
	{name: "MGI", code: "M"},
	{name: "RGD", code: "R"},
	{name: "SGD", code: "D"},
	{name: "FlyBase", code: "F"},
	{name: "WormBase", code: "W"},
	{name: "ZFIN", code: "Z"},
	{name: "TAIR", code: "A"},
	{name: "Affy", code: "X"},
	{name: "EC Number", code: "E"},
	{name: "GeneOntology", code: "T"},
	{name: "HMDB", code: "Ch"},
	{name: "ChEBI", code: "Ce"},
	{name: "KEGG Compound", code: "Ck"},
	{name: "CAS", code: "Ca"},
	{name: "PubChem-compound", code: "Cpc"},
	{name: "Reactome", code: "Re"},
	{name: "Wikidata", code: "Wd"},
}

var dataSourceByName, dataSourceByCode = indexDataSources()

func indexDataSources() (map[string]dataSourceInfo, map[string]dataSourceInfo) {
	byName := make(map[string]dataSourceInfo, len(dataSourceList))
	byCode := make(map[string]dataSourceInfo, len(dataSourceList))
	for _, info := range dataSourceList {
		byName[strings.ToLower(info.name)] = info
		byCode[info.code] = info
	}
	return byName, byCode
}

// DataSourceByName resolves a full name or a system code, unknown names are kept verbatim
func DataSourceByName(name string) DataSource {
	name = strings.TrimSpace(name)
	if info, ok := dataSourceByName[strings.ToLower(name)]; ok {
		return DataSource(info.name)
	}
	if info, ok := dataSourceByCode[name]; ok {
		return DataSource(info.name)
	}
	return DataSource(name)
}
